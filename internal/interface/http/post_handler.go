package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	postapp "github.com/aryaduta/go-blog-api/internal/application"
	"github.com/aryaduta/go-blog-api/internal/interface/middleware"
	"github.com/aryaduta/go-blog-api/pkg/response"
	"github.com/aryaduta/go-blog-api/pkg/schema"
	"github.com/aryaduta/go-blog-api/pkg/validation"
)

type PostHandler struct {
	Svc    *postapp.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *postapp.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// Create handles POST /post. Requires the auth gate.
func (h *PostHandler) Create(c *gin.Context) {
	var req schema.PostCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("create post failed")
		}
		response.Error(c, http.StatusInternalServerError, "post creation failed", nil)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /post with offset pagination and an optional
// published=true filter.
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	publishedOnly := c.Query("published") == "true"

	posts, meta, err := h.Svc.List(c.Request.Context(), page, limit, publishedOnly)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list posts failed")
		}
		response.Error(c, http.StatusInternalServerError, "failed to fetch posts", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "pagination": meta})
}

// Get handles GET /post/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}

	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postapp.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("post_id", id).Error("get post failed")
		}
		response.Error(c, http.StatusInternalServerError, "failed to fetch post", nil)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListByAuthor handles GET /post/author/:authorId.
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("authorId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid author id", nil)
		return
	}

	posts, err := h.Svc.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("author_id", authorID).Error("list posts by author failed")
		}
		response.Error(c, http.StatusInternalServerError, "failed to fetch posts", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Update handles PUT /post/:id. Requires the auth and ownership gates; only
// fields present in the payload are applied.
func (h *PostHandler) Update(c *gin.Context) {
	var req schema.PostUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), middleware.PostID(c), req)
	if err != nil {
		if errors.Is(err, postapp.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("update post failed")
		}
		response.Error(c, http.StatusInternalServerError, "post update failed", nil)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /post/:id. Requires the auth and ownership gates.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.PostID(c)); err != nil {
		if errors.Is(err, postapp.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("delete post failed")
		}
		response.Error(c, http.StatusInternalServerError, "post deletion failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
