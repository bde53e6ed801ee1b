package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aryaduta/go-blog-api/internal/interface/http"
)

// UserModule wires account registration and login routes.
// Public: POST /api/v1/user/register, POST /api/v1/user/login

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", m.Handler.Register)
		user.POST("/login", m.Handler.Login)
	}
}
