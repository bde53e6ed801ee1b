package repository

import (
	"context"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
)

// PostFilter narrows and pages the post listing. Page and Limit are
// 1-based and already normalized by the caller.
type PostFilter struct {
	Page          int
	Limit         int
	PublishedOnly bool
}

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	// GetAuthorID fetches only the owning account id of a post.
	GetAuthorID(ctx context.Context, id int64) (int64, error)
	// List returns one page of posts ordered by id descending, plus the
	// total row count for the filter.
	List(ctx context.Context, f PostFilter) ([]entity.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
