package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	"github.com/aryaduta/go-blog-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, published, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.Published, p.AuthorID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) GetAuthorID(ctx context.Context, id int64) (int64, error) {
	var authorID int64

	row := r.pool.QueryRow(ctx, `SELECT author_id FROM posts WHERE id = $1`, id)
	if err := row.Scan(&authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	return authorID, nil
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, int64, error) {
	where := ""
	if f.PublishedOnly {
		where = " WHERE published = true"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM posts`+where+`
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, f.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY id DESC
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, published = $3, updated_at = $4
		WHERE id = $5
	`, p.Title, p.Content, p.Published, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)

func scanPosts(rows pgx.Rows) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
