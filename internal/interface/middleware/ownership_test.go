package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
	"github.com/aryaduta/go-blog-api/pkg/helpers"
)

// authorOnlyRepo serves the single repository call the ownership gate makes.
type authorOnlyRepo struct {
	authors map[int64]int64
}

func (f *authorOnlyRepo) GetAuthorID(_ context.Context, id int64) (int64, error) {
	authorID, ok := f.authors[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	return authorID, nil
}

func (f *authorOnlyRepo) Create(context.Context, *entity.Post) error { return nil }
func (f *authorOnlyRepo) GetByID(context.Context, int64) (*entity.Post, error) {
	return nil, repo.ErrNotFound
}
func (f *authorOnlyRepo) List(context.Context, repo.PostFilter) ([]entity.Post, int64, error) {
	return nil, 0, nil
}
func (f *authorOnlyRepo) ListByAuthor(context.Context, int64) ([]entity.Post, error) {
	return nil, nil
}
func (f *authorOnlyRepo) Update(context.Context, *entity.Post) error { return nil }
func (f *authorOnlyRepo) Delete(context.Context, int64) error        { return nil }

var _ repo.PostRepository = (*authorOnlyRepo)(nil)

func newOwnershipRouter(t *testing.T, posts repo.PostRepository, actingUser int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("s", time.Hour)
	tok, _, err := jwt.Generate(actingUser)
	require.NoError(t, err)

	r := gin.New()
	r.DELETE("/post/:id", Auth(jwt, nil), PostOwnership(posts, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": PostID(c)})
	})
	return r, tok
}

func doDelete(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOwnershipNonNumericID(t *testing.T) {
	t.Parallel()
	r, tok := newOwnershipRouter(t, &authorOnlyRepo{authors: map[int64]int64{}}, 1)

	w := doDelete(r, "/post/abc", tok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOwnershipPostNotFound(t *testing.T) {
	t.Parallel()
	r, tok := newOwnershipRouter(t, &authorOnlyRepo{authors: map[int64]int64{}}, 1)

	w := doDelete(r, "/post/5", tok)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnershipMismatch(t *testing.T) {
	t.Parallel()
	r, tok := newOwnershipRouter(t, &authorOnlyRepo{authors: map[int64]int64{5: 2}}, 1)

	w := doDelete(r, "/post/5", tok)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnershipMatch(t *testing.T) {
	t.Parallel()
	r, tok := newOwnershipRouter(t, &authorOnlyRepo{authors: map[int64]int64{5: 1}}, 1)

	w := doDelete(r, "/post/5", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":5}`, w.Body.String())
}
