package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/aryaduta/go-blog-api/internal/application"
	"github.com/aryaduta/go-blog-api/pkg/response"
	"github.com/aryaduta/go-blog-api/pkg/schema"
	"github.com/aryaduta/go-blog-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Register handles POST /user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req schema.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, userapp.ErrUsernameTaken) {
			response.Error(c, http.StatusConflict, "username already taken", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("register failed")
		}
		response.Error(c, http.StatusInternalServerError, "user creation failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u.Public(), "jwt": token})
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req schema.SigninInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user does not exist", nil)
		case errors.Is(err, userapp.ErrInvalidCredentials):
			response.Error(c, http.StatusForbidden, "invalid username or password", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("login failed")
			}
			response.Error(c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u.Public(), "jwt": token})
}
