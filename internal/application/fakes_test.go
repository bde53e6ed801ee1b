package application

import (
	"context"
	"sort"
	"time"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakePostRepo struct {
	nextID int64
	posts  map[int64]entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]entity.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (f *fakePostRepo) GetAuthorID(_ context.Context, id int64) (int64, error) {
	p, ok := f.posts[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	return p.AuthorID, nil
}

func (f *fakePostRepo) sortedDesc(filter func(entity.Post) bool) []entity.Post {
	out := make([]entity.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if filter == nil || filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakePostRepo) List(_ context.Context, flt repo.PostFilter) ([]entity.Post, int64, error) {
	var match func(entity.Post) bool
	if flt.PublishedOnly {
		match = func(p entity.Post) bool { return p.Published }
	}
	all := f.sortedDesc(match)
	total := int64(len(all))

	start := (flt.Page - 1) * flt.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + flt.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID int64) ([]entity.Post, error) {
	return f.sortedDesc(func(p entity.Post) bool { return p.AuthorID == authorID }), nil
}

func (f *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return repo.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

var (
	_ repo.UserRepository = (*fakeUserRepo)(nil)
	_ repo.PostRepository = (*fakePostRepo)(nil)
)
