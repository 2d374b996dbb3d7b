package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/GIT-Saikat/Blog-Application/models"
)

const (
	usersTable    = "users"
	postsTable    = "posts"
	commentsTable = "comments"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

	// posts joined with their author
	postWithAuthorColumns = []string{
		"p.id", "p.title", "p.content", "p.author_id", "p.created_at", "p.updated_at",
		"u.username",
	}

	commentColumns = []string{"id", "content", "post_id", "author_id", "created_at", "updated_at"}

	// comments joined with their author
	commentWithAuthorColumns = []string{
		"c.id", "c.content", "c.post_id", "c.author_id", "c.created_at", "c.updated_at",
		"u.username", "u.email",
	}
)

// ── users ────────────────────────────────────────────────────────────────────

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (db *DB) selectUserQuery(column, value string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

// ── posts ────────────────────────────────────────────────────────────────────

func (db *DB) insertPostQuery(post models.Post) (string, []any, error) {
	return db.builder.
		Insert(postsTable).
		Columns("id", "title", "content", "author_id", "created_at", "updated_at").
		Values(post.ID, post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt).
		ToSql()
}

// selectPostsQuery selects posts with their author, newest first. A nil
// where selects every post.
func (db *DB) selectPostsQuery(where sq.Sqlizer) (string, []any, error) {
	q := db.builder.
		Select(postWithAuthorColumns...).
		From(postsTable + " p").
		Join(usersTable + " u ON u.id = p.author_id").
		OrderBy("p.created_at DESC", "p.id DESC")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func (db *DB) selectPostAuthorQuery(postID string) (string, []any, error) {
	return db.builder.
		Select("author_id").
		From(postsTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func (db *DB) updatePostQuery(postID, authorID string, update models.PostUpdate) (string, []any, error) {
	q := db.builder.
		Update(postsTable).
		Set("updated_at", update.UpdatedAt)
	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", *update.Content)
	}
	return q.Where(ownedBy(postID, authorID)).ToSql()
}

func (db *DB) deletePostQuery(postID, authorID string) (string, []any, error) {
	return db.builder.
		Delete(postsTable).
		Where(ownedBy(postID, authorID)).
		ToSql()
}

// ── comments ─────────────────────────────────────────────────────────────────

func (db *DB) insertCommentQuery(comment models.Comment) (string, []any, error) {
	return db.builder.
		Insert(commentsTable).
		Columns(commentColumns...).
		Values(comment.ID, comment.Content, comment.PostID, comment.AuthorID, comment.CreatedAt, comment.UpdatedAt).
		ToSql()
}

// selectCommentsOfPostsQuery selects the bare comments of the given posts,
// newest first.
func (db *DB) selectCommentsOfPostsQuery(postIDs []string) (string, []any, error) {
	return db.builder.
		Select(commentColumns...).
		From(commentsTable).
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// selectCommentsQuery selects comments with their author, newest first. A
// nil where selects every comment.
func (db *DB) selectCommentsQuery(where sq.Sqlizer) (string, []any, error) {
	q := db.builder.
		Select(commentWithAuthorColumns...).
		From(commentsTable + " c").
		Join(usersTable + " u ON u.id = c.author_id").
		OrderBy("c.created_at DESC", "c.id DESC")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func (db *DB) selectCommentAuthorQuery(commentID string) (string, []any, error) {
	return db.builder.
		Select("author_id").
		From(commentsTable).
		Where(sq.Eq{"id": commentID}).
		ToSql()
}

func (db *DB) updateCommentQuery(commentID, authorID string, update models.CommentUpdate) (string, []any, error) {
	return db.builder.
		Update(commentsTable).
		Set("content", update.Content).
		Set("updated_at", update.UpdatedAt).
		Where(ownedBy(commentID, authorID)).
		ToSql()
}

func (db *DB) deleteCommentQuery(commentID, authorID string) (string, []any, error) {
	return db.builder.
		Delete(commentsTable).
		Where(ownedBy(commentID, authorID)).
		ToSql()
}

// ownedBy restricts a write to the row id owned by authorID.
func ownedBy(id, authorID string) sq.And {
	return sq.And{sq.Eq{"id": id}, sq.Eq{"author_id": authorID}}
}
