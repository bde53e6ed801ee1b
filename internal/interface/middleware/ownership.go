package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
	"github.com/aryaduta/go-blog-api/pkg/response"
)

const CtxPostIDKey = "postID"

// PostOwnership runs after Auth on mutation routes targeting a single post.
// Authentication alone is not enough: the acting account must own the post.
// The parsed post id is stored in the context for the downstream handler.
func PostOwnership(posts repo.PostRepository, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.AbortError(c, http.StatusBadRequest, "invalid post id", nil)
			return
		}

		authorID, err := posts.GetAuthorID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.AbortError(c, http.StatusNotFound, "post not found", nil)
				return
			}
			if logger != nil {
				logger.WithError(err).WithField("post_id", id).Error("ownership lookup failed")
			}
			response.AbortError(c, http.StatusInternalServerError, "failed to verify post ownership", nil)
			return
		}

		if authorID != UserID(c) {
			response.AbortError(c, http.StatusForbidden, "you can only modify your own posts", nil)
			return
		}

		c.Set(CtxPostIDKey, id)
		c.Next()
	}
}

// PostID returns the post id parsed and verified by PostOwnership.
func PostID(c *gin.Context) int64 {
	return c.GetInt64(CtxPostIDKey)
}
