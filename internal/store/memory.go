package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/GIT-Saikat/Blog-Application/models"
)

// MemoryDB is an in-process store with the same constraints as the SQL
// schema: unique username and email, foreign keys from posts and comments,
// and comments cascading with their post. It is safe for concurrent use.
type MemoryDB struct {
	mu       sync.RWMutex
	users    map[string]models.User
	posts    map[string]models.Post
	comments map[string]models.Comment
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:    make(map[string]models.User),
		posts:    make(map[string]models.Post),
		comments: make(map[string]models.Comment),
	}
}

type memoryUserRepository struct{ *MemoryDB }
type memoryPostRepository struct{ *MemoryDB }
type memoryCommentRepository struct{ *MemoryDB }

func NewMemoryUserRepository(db *MemoryDB) UserRepository       { return &memoryUserRepository{db} }
func NewMemoryPostRepository(db *MemoryDB) PostRepository       { return &memoryPostRepository{db} }
func NewMemoryCommentRepository(db *MemoryDB) CommentRepository { return &memoryCommentRepository{db} }

// newestFirst orders by creation time descending, ties broken by id
// descending, matching the SQL ORDER BY.
func newestFirst(aCreated, bCreated time.Time, aID, bID string) int {
	if c := bCreated.Compare(aCreated); c != 0 {
		return c
	}
	return -strings.Compare(aID, bID)
}

// ── users ────────────────────────────────────────────────────────────────────

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.User{}, ErrUserAlreadyExists
		}
	}
	if _, ok := m.users[user.ID]; ok {
		return models.User{}, ErrUserAlreadyExists
	}

	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Username == username })
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Email == email })
}

func (m *memoryUserRepository) findUser(match func(models.User) bool) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

// ── posts ────────────────────────────────────────────────────────────────────

func (m *memoryPostRepository) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[post.AuthorID]; !ok {
		return models.Post{}, ErrReferencedRecordNotFound
	}

	post.Author = nil
	post.Comments = nil
	m.posts[post.ID] = post
	return post, nil
}

func (m *memoryPostRepository) FindAllPosts(_ context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, m.hydratePost(p))
	}
	slices.SortFunc(posts, func(a, b models.Post) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return posts, nil
}

func (m *memoryPostRepository) FindPostByID(_ context.Context, postID string) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[postID]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return m.hydratePost(p), nil
}

func (m *memoryPostRepository) FindPostAuthor(_ context.Context, postID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[postID]
	if !ok {
		return "", ErrPostNotFound
	}
	return p.AuthorID, nil
}

func (m *memoryPostRepository) UpdatePost(_ context.Context, postID, authorID string, update models.PostUpdate) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[postID]
	if !ok || p.AuthorID != authorID {
		return models.Post{}, ErrPostNotFound
	}

	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Content != nil {
		p.Content = *update.Content
	}
	p.UpdatedAt = update.UpdatedAt
	m.posts[postID] = p

	p.Author = m.author(p.AuthorID, false)
	return p, nil
}

func (m *memoryPostRepository) DeletePost(_ context.Context, postID, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[postID]
	if !ok || p.AuthorID != authorID {
		return ErrPostNotFound
	}

	delete(m.posts, postID)
	for id, c := range m.comments {
		if c.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}

// hydratePost attaches the author and the bare comments, newest first.
// Callers hold at least the read lock.
func (m *MemoryDB) hydratePost(p models.Post) models.Post {
	p.Author = m.author(p.AuthorID, false)

	p.Comments = []models.Comment{}
	for _, c := range m.comments {
		if c.PostID == p.ID {
			p.Comments = append(p.Comments, c)
		}
	}
	slices.SortFunc(p.Comments, func(a, b models.Comment) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return p
}

func (m *MemoryDB) author(userID string, withEmail bool) *models.Author {
	u := m.users[userID]
	a := &models.Author{ID: userID, Username: u.Username}
	if withEmail {
		a.Email = u.Email
	}
	return a
}

// ── comments ─────────────────────────────────────────────────────────────────

func (m *memoryCommentRepository) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[comment.PostID]; !ok {
		return models.Comment{}, ErrReferencedRecordNotFound
	}
	if _, ok := m.users[comment.AuthorID]; !ok {
		return models.Comment{}, ErrReferencedRecordNotFound
	}

	comment.Author = nil
	m.comments[comment.ID] = comment
	return comment, nil
}

func (m *memoryCommentRepository) FindAllComments(_ context.Context) ([]models.Comment, error) {
	return m.listComments(func(models.Comment) bool { return true }, false), nil
}

func (m *memoryCommentRepository) FindCommentsByPost(_ context.Context, postID string) ([]models.Comment, error) {
	return m.listComments(func(c models.Comment) bool { return c.PostID == postID }, true), nil
}

func (m *memoryCommentRepository) listComments(match func(models.Comment) bool, withEmail bool) []models.Comment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comments := make([]models.Comment, 0, len(m.comments))
	for _, c := range m.comments {
		if match(c) {
			c.Author = m.author(c.AuthorID, withEmail)
			comments = append(comments, c)
		}
	}
	slices.SortFunc(comments, func(a, b models.Comment) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return comments
}

func (m *memoryCommentRepository) FindCommentAuthor(_ context.Context, commentID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.comments[commentID]
	if !ok {
		return "", ErrCommentNotFound
	}
	return c.AuthorID, nil
}

func (m *memoryCommentRepository) UpdateComment(_ context.Context, commentID, authorID string, update models.CommentUpdate) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[commentID]
	if !ok || c.AuthorID != authorID {
		return models.Comment{}, ErrCommentNotFound
	}

	c.Content = update.Content
	c.UpdatedAt = update.UpdatedAt
	m.comments[commentID] = c

	c.Author = m.author(c.AuthorID, true)
	return c, nil
}

func (m *memoryCommentRepository) DeleteComment(_ context.Context, commentID, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[commentID]
	if !ok || c.AuthorID != authorID {
		return ErrCommentNotFound
	}

	delete(m.comments, commentID)
	return nil
}
