package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/GIT-Saikat/Blog-Application/internal/adapter"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"register":       {"register -u <username> -e <email> -p <password>", runRegister},
	"login":          {"login (-u <username> | -e <email>) -p <password>", runLogin},
	"version":        {"version", runVersion},
	"posts":          {"posts", runListPosts},
	"post":           {"post <postId>", runGetPost},
	"create-post":    {"create-post -title <title> -content <content>", runCreatePost},
	"update-post":    {"update-post [-title <title>] [-content <content>] <postId>", runUpdatePost},
	"delete-post":    {"delete-post <postId>", runDeletePost},
	"comments":       {"comments [-post <postId>]", runListComments},
	"comment":        {"comment -post <postId> -content <content>", runCreateComment},
	"update-comment": {"update-comment -content <content> <commentId>", runUpdateComment},
	"delete-comment": {"delete-comment <commentId>", runDeleteComment},
}

// App dispatches command line arguments to a [adapter.ServerAdapter].
type App struct {
	server adapter.ServerAdapter
	out    io.Writer
	logger *logger.Logger
}

// NewApp returns an App printing results to out.
func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, out: out, logger: logger}
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	result, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: blog-client [-s address] [-token token] <command>")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// positional returns the single positional argument left after fs parsed args.
func positional(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: expected one id", ErrMissingArgs)
	}
	return fs.Arg(0), nil
}

// optional returns a pointer to value when the flag was set explicitly.
func optional(fs *flag.FlagSet, name, value string) *string {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return &value
}

func runRegister(ctx context.Context, a *App, args []string) (any, error) {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Username, "u", "", "username")
	fs.StringVar(&req.Email, "e", "", "email")
	fs.StringVar(&req.Password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	userID, err := a.server.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return models.RegisterResponse{Message: "User registered successfully", UserID: userID}, nil
}

func runLogin(ctx context.Context, a *App, args []string) (any, error) {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Username, "u", "", "username")
	fs.StringVar(&req.Email, "e", "", "email")
	fs.StringVar(&req.Password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.server.Login(ctx, req)
}

func runVersion(ctx context.Context, a *App, _ []string) (any, error) {
	return a.server.Version(ctx)
}

func runListPosts(ctx context.Context, a *App, _ []string) (any, error) {
	return a.server.ListPosts(ctx)
}

func runGetPost(ctx context.Context, a *App, args []string) (any, error) {
	postID, err := positional(newFlagSet("post"), args)
	if err != nil {
		return nil, err
	}
	return a.server.GetPost(ctx, postID)
}

func runCreatePost(ctx context.Context, a *App, args []string) (any, error) {
	var req models.CreatePostRequest
	fs := newFlagSet("create-post")
	fs.StringVar(&req.Title, "title", "", "title")
	fs.StringVar(&req.Content, "content", "", "content")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	postID, err := a.server.CreatePost(ctx, req)
	if err != nil {
		return nil, err
	}
	return models.CreatePostResponse{Message: "Post created successfully", PostID: postID}, nil
}

func runUpdatePost(ctx context.Context, a *App, args []string) (any, error) {
	var title, content string
	fs := newFlagSet("update-post")
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&content, "content", "", "new content")
	postID, err := positional(fs, args)
	if err != nil {
		return nil, err
	}

	return a.server.UpdatePost(ctx, postID, models.UpdatePostRequest{
		Title:   optional(fs, "title", title),
		Content: optional(fs, "content", content),
	})
}

func runDeletePost(ctx context.Context, a *App, args []string) (any, error) {
	postID, err := positional(newFlagSet("delete-post"), args)
	if err != nil {
		return nil, err
	}
	if err = a.server.DeletePost(ctx, postID); err != nil {
		return nil, err
	}
	return "Post deleted successfully", nil
}

func runListComments(ctx context.Context, a *App, args []string) (any, error) {
	var postID string
	fs := newFlagSet("comments")
	fs.StringVar(&postID, "post", "", "only comments of this post")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if postID != "" {
		return a.server.ListCommentsByPost(ctx, postID)
	}
	return a.server.ListComments(ctx)
}

func runCreateComment(ctx context.Context, a *App, args []string) (any, error) {
	var req models.CreateCommentRequest
	fs := newFlagSet("comment")
	fs.StringVar(&req.PostID, "post", "", "post id")
	fs.StringVar(&req.Content, "content", "", "content")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	commentID, err := a.server.CreateComment(ctx, req)
	if err != nil {
		return nil, err
	}
	return models.CreateCommentResponse{Message: "Comment created successfully", CommentID: commentID}, nil
}

func runUpdateComment(ctx context.Context, a *App, args []string) (any, error) {
	var content string
	fs := newFlagSet("update-comment")
	fs.StringVar(&content, "content", "", "new content")
	commentID, err := positional(fs, args)
	if err != nil {
		return nil, err
	}

	return a.server.UpdateComment(ctx, commentID, models.UpdateCommentRequest{
		Content: optional(fs, "content", content),
	})
}

func runDeleteComment(ctx context.Context, a *App, args []string) (any, error) {
	commentID, err := positional(newFlagSet("delete-comment"), args)
	if err != nil {
		return nil, err
	}
	if err = a.server.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}
	return "Comment deleted successfully", nil
}
