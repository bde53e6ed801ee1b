package router

import (
	app "github.com/aryaduta/go-blog-api/internal/application"
	"github.com/aryaduta/go-blog-api/internal/container"
	pginfra "github.com/aryaduta/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/aryaduta/go-blog-api/internal/interface/http"
	"github.com/aryaduta/go-blog-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	userSvc := app.NewUserService(userRepo, container.GetJWT(), container.GetLogger())
	postSvc := app.NewPostService(postRepo, userRepo, container.GetLogger())

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetLogger())))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, container.GetLogger()), postRepo))
}
