package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/aryaduta/go-blog-api/internal/container"
	handlers "github.com/aryaduta/go-blog-api/internal/interface/http"
	"github.com/aryaduta/go-blog-api/internal/interface/middleware"

	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
)

// PostModule wires post CRUD routes.
// Public: GET /api/v1/post, GET /api/v1/post/:id, GET /api/v1/post/author/:authorId
// Protected: POST /api/v1/post (auth), PUT/DELETE /api/v1/post/:id (auth + ownership)

type PostModule struct {
	Handler *handlers.PostHandler
	Posts   repo.PostRepository
}

func NewPostModule(h *handlers.PostHandler, posts repo.PostRepository) *PostModule {
	return &PostModule{Handler: h, Posts: posts}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(container.GetJWT(), container.GetLogger())
	owner := middleware.PostOwnership(m.Posts, container.GetLogger())

	post := rg.Group("/post")
	{
		post.GET("", m.Handler.List)
		post.GET("/author/:authorId", m.Handler.ListByAuthor)
		post.GET("/:id", m.Handler.Get)

		post.POST("", auth, m.Handler.Create)
		post.PUT("/:id", auth, owner, m.Handler.Update)
		post.DELETE("/:id", auth, owner, m.Handler.Delete)
	}
}
