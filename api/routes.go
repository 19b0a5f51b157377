package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public content routes, the intake routes, and the
// authenticated admin routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public content: what the marketing site renders
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getPublishedProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getPublishedProject())
		r.Get("/gallery", handlers.galleryHandler.getActiveImages())
		r.Get("/brands", handlers.brandHandler.getActiveBrands())

		// Visitor form intake
		r.Post("/contact", handlers.intakeHandler.submitContact())
		r.Post("/quote", handlers.intakeHandler.submitQuote())
		r.Post("/notify", handlers.intakeHandler.notify())

		// Session establishment
		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin routes: everything behind the session gate
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/admin/logout", handlers.authHandler.logout())
		r.Get("/admin/me", handlers.authHandler.currentUser())

		r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/admin/projects/{projectID}/images", handlers.projectHandler.addProjectImage())
		r.Delete("/admin/project-images/{imageID}", handlers.projectHandler.deleteProjectImage())

		r.Get("/admin/gallery", handlers.galleryHandler.getAllImages())
		r.Post("/admin/gallery", handlers.galleryHandler.createImage())
		r.Put("/admin/gallery/{imageID}", handlers.galleryHandler.updateImage())
		r.Delete("/admin/gallery/{imageID}", handlers.galleryHandler.deleteImage())

		r.Get("/admin/brands", handlers.brandHandler.getAllBrands())
		r.Post("/admin/brands", handlers.brandHandler.createBrand())
		r.Put("/admin/brands/{brandID}", handlers.brandHandler.updateBrand())
		r.Delete("/admin/brands/{brandID}", handlers.brandHandler.deleteBrand())

		r.Post("/admin/upload", handlers.uploadHandler.uploadImage())
	})
}
