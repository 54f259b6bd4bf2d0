// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AdmissionHandler  *handler.AdmissionHandler
	SessionMiddleware *middleware.SessionMiddleware

	ProjectHandler     *handler.ContentHandler[entity.Project]
	NewsHandler        *handler.ContentHandler[entity.NewsItem]
	EventHandler       *handler.ContentHandler[entity.Event]
	CourseHandler      *handler.ContentHandler[entity.Course]
	FacultyHandler     *handler.ContentHandler[entity.FacultyMember]
	PartnershipHandler *handler.ContentHandler[entity.Partnership]
	TestimonialHandler *handler.ContentHandler[entity.Testimonial]
	ContactHandler     *handler.ContentHandler[entity.ContactMessage]
	SettingHandler     *handler.ContentHandler[entity.SiteSetting]
	FeatureFlagHandler *handler.ContentHandler[entity.FeatureFlag]
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	sessionMW := r.params.SessionMiddleware
	adminOnly := []echo.MiddlewareFunc{
		sessionMW.Authenticate,
		sessionMW.RequireRole(entity.RoleAdmin.String()),
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/admin-login", r.params.AuthHandler.AdminLogin)
		authGroup.GET("/user", r.params.AuthHandler.CurrentUser)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Public submission, admin-gated review workflow.
	api.POST("/admissions", r.params.AdmissionHandler.Submit)
	admissionAdmin := api.Group("/admissions/admin", adminOnly...)
	{
		admissionAdmin.GET("", r.params.AdmissionHandler.List)
		admissionAdmin.GET("/:id", r.params.AdmissionHandler.Get)
		admissionAdmin.PATCH("/:id", r.params.AdmissionHandler.Review)
		admissionAdmin.GET("/:id/pdf", r.params.AdmissionHandler.SignedPDFURL)
	}

	registerContent(api, "projects", r.params.ProjectHandler, adminOnly)
	registerContent(api, "news", r.params.NewsHandler, adminOnly)
	registerContent(api, "events", r.params.EventHandler, adminOnly)
	registerContent(api, "courses", r.params.CourseHandler, adminOnly)
	registerContent(api, "faculty", r.params.FacultyHandler, adminOnly)
	registerContent(api, "partnerships", r.params.PartnershipHandler, adminOnly)
	registerContent(api, "testimonials", r.params.TestimonialHandler, adminOnly)
	registerContent(api, "settings", r.params.SettingHandler, adminOnly)
	registerContent(api, "feature-flags", r.params.FeatureFlagHandler, adminOnly)
	registerContactRoutes(api, r.params.ContactHandler, adminOnly)
}

// registerContent wires the uniform content routes: public reads, admin-gated
// mutations.
func registerContent[T any](api *echo.Group, name string, h *handler.ContentHandler[T], adminOnly []echo.MiddlewareFunc) {
	g := api.Group("/" + name)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, adminOnly...)
	g.PUT("/:id", h.Update, adminOnly...)
	g.DELETE("/:id", h.Delete, adminOnly...)
}

// registerContactRoutes differs from the uniform pattern: anyone may submit
// a message, only admins may read or manage the inbox.
func registerContactRoutes(api *echo.Group, h *handler.ContentHandler[entity.ContactMessage], adminOnly []echo.MiddlewareFunc) {
	g := api.Group("/contact")
	g.POST("", h.Create)
	g.GET("", h.List, adminOnly...)
	g.GET("/:id", h.Get, adminOnly...)
	g.PUT("/:id", h.Update, adminOnly...)
	g.DELETE("/:id", h.Delete, adminOnly...)
}
