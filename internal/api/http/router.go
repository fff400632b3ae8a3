package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-directory-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Users           *handlers.UsersHandler
	Administrations *handlers.AdministrationsHandler
	Departments     *handlers.DepartmentsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/search", cfg.Users.Search)
	users.Get("/administration/:administrationId", cfg.Users.ListByAdministration)
	users.Get("/department/:departmentId", cfg.Users.ListByDepartment)
	users.Get("/:id", cfg.Users.GetByID)
	users.Put("/:id/credentials", cfg.Users.UpdateCredentials)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	administrations := api.Group("/administrations")
	administrations.Post("", cfg.Administrations.Create)
	administrations.Get("", cfg.Administrations.List)
	administrations.Get("/searchByName", cfg.Administrations.SearchByName)
	administrations.Get("/:id", cfg.Administrations.GetByID)
	administrations.Put("/:id", cfg.Administrations.Update)
	administrations.Delete("/:id", cfg.Administrations.Delete)

	departments := api.Group("/departments")
	departments.Post("", cfg.Departments.Create)
	departments.Get("", cfg.Departments.List)
	departments.Get("/searchByName", cfg.Departments.SearchByName)
	departments.Get("/:id", cfg.Departments.GetByID)
	departments.Put("/:id", cfg.Departments.Update)
	departments.Delete("/:id", cfg.Departments.Delete)
}
