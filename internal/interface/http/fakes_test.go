package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
)

// In-memory repositories so handler tests exercise the full HTTP stack
// without a database.

type memUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return repo.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type memPostRepo struct {
	nextID int64
	posts  map[int64]entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[int64]entity.Post)}
}

func (m *memPostRepo) Create(_ context.Context, p *entity.Post) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.posts[p.ID] = *p
	return nil
}

func (m *memPostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (m *memPostRepo) GetAuthorID(_ context.Context, id int64) (int64, error) {
	p, ok := m.posts[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	return p.AuthorID, nil
}

func (m *memPostRepo) sortedDesc(match func(entity.Post) bool) []entity.Post {
	out := make([]entity.Post, 0, len(m.posts))
	for _, p := range m.posts {
		if match == nil || match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memPostRepo) List(_ context.Context, f repo.PostFilter) ([]entity.Post, int64, error) {
	var match func(entity.Post) bool
	if f.PublishedOnly {
		match = func(p entity.Post) bool { return p.Published }
	}
	all := m.sortedDesc(match)
	total := int64(len(all))

	start := (f.Page - 1) * f.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *memPostRepo) ListByAuthor(_ context.Context, authorID int64) ([]entity.Post, error) {
	return m.sortedDesc(func(p entity.Post) bool { return p.AuthorID == authorID }), nil
}

func (m *memPostRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := m.posts[p.ID]; !ok {
		return repo.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	m.posts[p.ID] = *p
	return nil
}

func (m *memPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

var (
	_ repo.UserRepository = (*memUserRepo)(nil)
	_ repo.PostRepository = (*memPostRepo)(nil)
)
