package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Messages *handlers.MessagesHandler
	Authors  *handlers.AuthorsHandler
	Books    *handlers.BooksHandler
	Users    *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Home)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	messages := app.Group("/messages")
	messages.Get("/", cfg.Messages.List)
	messages.Get("/msg-id/*", cfg.Messages.GetByMsgID)
	messages.Get("/:id", cfg.Messages.GetByID)
	messages.Post("/", cfg.Messages.Upload)

	authors := app.Group("/authors")
	authors.Get("/", cfg.Authors.List)
	authors.Get("/:id", cfg.Authors.Get)
	authors.Post("/", cfg.Authors.Create)
	authors.Put("/:id", cfg.Authors.Update)
	authors.Delete("/:id", cfg.Authors.Delete)

	books := app.Group("/books")
	books.Get("/", cfg.Books.List)
	books.Get("/:id", cfg.Books.Get)
	books.Post("/", cfg.Books.Create)
	books.Put("/:id", cfg.Books.Update)
	books.Delete("/:id", cfg.Books.Delete)

	users := app.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/", cfg.Users.Create)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
