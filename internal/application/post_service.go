package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
	"github.com/aryaduta/go-blog-api/pkg/schema"
)

var ErrPostNotFound = errors.New("post not found")

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Pagination is the metadata returned next to a page of posts.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Create stores a post owned by authorID and returns it joined with the
// author's public projection.
func (s *PostService) Create(ctx context.Context, authorID int64, in schema.PostCreateInput) (*entity.PostWithAuthor, error) {
	author, err := s.Users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &entity.Post{Title: in.Title, Content: in.Content, AuthorID: authorID}
	if err := s.Posts.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("author_id", authorID).Error("create post failed")
		}
		return nil, err
	}

	return &entity.PostWithAuthor{Post: *p, Author: author.Public()}, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns one page of posts, newest first, with pagination metadata.
// Page and limit are normalized to defaults; limit is capped.
func (s *PostService) List(ctx context.Context, page, limit int, publishedOnly bool) ([]entity.Post, Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	posts, total, err := s.Posts.List(ctx, repo.PostFilter{Page: page, Limit: limit, PublishedOnly: publishedOnly})
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return posts, Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error) {
	return s.Posts.ListByAuthor(ctx, authorID)
}

// Update applies only the fields present in the patch. An empty patch is a
// no-op returning the current row. A row deleted between the ownership
// check and the write surfaces as ErrPostNotFound.
func (s *PostService) Update(ctx context.Context, id int64, in schema.PostUpdateInput) (*entity.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return p, nil
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Published != nil {
		p.Published = *in.Published
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete is idempotent at the API level: deleting an already-missing post
// reports ErrPostNotFound rather than failing hard.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
