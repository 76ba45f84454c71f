package api

import (
	"github.com/gin-gonic/gin"

	"github.com/k1ngs/portfolio-api/internal/auth"
	"github.com/k1ngs/portfolio-api/internal/handler"
	"github.com/k1ngs/portfolio-api/internal/middleware"
)

// Handlers groups everything route registration needs.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Content    *handler.ContentHandler
	Project    *handler.ProjectHandler
	Skill      *handler.SkillHandler
	Technology *handler.TechnologyHandler
	Contact    *handler.ContactHandler
	Terminal   *handler.TerminalHandler

	Tokens    *auth.Manager
	Limiter   *middleware.Limiter
	BodyLimit int64
}

// RegisterRoutes wires all routes. The rate limiter joins the engine
// chain so every inbound request passes admission control, the root
// banner and health probe included. The API group adds the body cap; the
// admin group additionally requires a valid session token.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.Use(h.Limiter.Middleware())

	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.BodySizeLimit(h.BodyLimit))

	v1.POST("/auth/login", h.Auth.Login)

	v1.GET("/content", h.Content.GetAll)
	v1.GET("/content/key/:key", h.Content.GetByKey)
	v1.GET("/content/category/:category", h.Content.GetByCategory)

	v1.GET("/projects", h.Project.List)
	v1.GET("/projects/:index", h.Project.Get)
	v1.GET("/skills", h.Skill.List)
	v1.GET("/technologies", h.Technology.List)

	v1.POST("/contact", h.Contact.Submit)
	v1.POST("/terminal/execute", h.Terminal.Execute)

	admin := v1.Group("/admin")
	admin.Use(auth.Middleware(h.Tokens))

	admin.GET("/content", h.Content.AdminList)
	admin.GET("/content/categories", h.Content.Categories)
	admin.POST("/content", h.Content.Create)
	admin.PUT("/content/:id", h.Content.Update)
	admin.DELETE("/content/:id", h.Content.Delete)

	admin.POST("/projects", h.Project.Create)
	admin.PUT("/projects/:id", h.Project.Update)
	admin.DELETE("/projects/:id", h.Project.Delete)

	admin.POST("/skills", h.Skill.Create)
	admin.PUT("/skills/:id", h.Skill.Update)
	admin.DELETE("/skills/:id", h.Skill.Delete)

	admin.POST("/technologies", h.Technology.Create)
	admin.PUT("/technologies/:id", h.Technology.Update)
	admin.DELETE("/technologies/:id", h.Technology.Delete)

	admin.GET("/contact", h.Contact.List)
	admin.PUT("/contact/:id/status", h.Contact.UpdateStatus)
	admin.DELETE("/contact/:id", h.Contact.Delete)
}
