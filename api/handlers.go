package api

// routeHandlers groups every handler the router mounts.
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	galleryHandler galleryHandler
	brandHandler   brandHandler
	intakeHandler  intakeHandler
	uploadHandler  uploadHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(deps.Auth),
		projectHandler: newProjectHandler(deps.Database.ProjectRepo(), deps.Database.ProjectImageRepo()),
		galleryHandler: newGalleryHandler(deps.Database.GalleryImageRepo()),
		brandHandler:   newBrandHandler(deps.Database.BrandRepo()),
		intakeHandler:  newIntakeHandler(deps.Notifier),
		uploadHandler:  newUploadHandler(deps.Uploader),
	}
}
