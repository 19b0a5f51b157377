package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zenatech-mv/site-backend/errs"
	"github.com/zenatech-mv/site-backend/models"
)

// projectStore is the slice of the database layer the handler needs.
type projectStore interface {
	FindAll(includeUnpublished bool) ([]*models.Project, error)
	FindByID(id uuid.UUID, includeUnpublished bool) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type projectImageStore interface {
	FindByID(id uuid.UUID) (*models.ProjectImage, error)
	Add(image *models.ProjectImage) error
	Delete(id uuid.UUID) error
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
	images    projectImageStore
}

func newProjectHandler(projects projectStore, images projectImageStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		images:    images,
	}
}

// ProjectCollection wraps a project listing response.
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getPublishedProjects serves the public portfolio: published rows only,
// ordered by sort_order, images included.
func (h projectHandler) getPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getPublishedProject serves a single published project. Unpublished rows are
// absent from the public surface.
func (h projectHandler) getPublishedProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(projectID, false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getAllProjects serves the admin list view: every row, with the list-view
// filters (search/category/status) applied over the full fetched set.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		projects = FilterProjects(projects,
			r.URL.Query().Get("search"),
			r.URL.Query().Get("category"),
			r.URL.Query().Get("status"),
		)

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if project.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		// Reload so the response carries server-populated fields and images
		createdProject, err := h.projects.FindByID(project.ID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, createdProject)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existingProject, err := h.projects.FindByID(projectID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		// Decode over the stored row so unsent fields keep their values;
		// the client may send only the fields it is changing
		project := *existingProject
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Ensure ID matches the path; the body cannot redirect the write
		project.ID = projectID
		project.CreatedAt = existingProject.CreatedAt

		if err := h.projects.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updatedProject, err := h.projects.FindByID(projectID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updatedProject)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(projectID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// addProjectImage attaches an image to an existing project.
func (h projectHandler) addProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(projectID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var image models.ProjectImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if image.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}

		image.ProjectID = projectID

		if err := h.images.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project image", "project image", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}

func (h projectHandler) deleteProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, apiErr := parseIDParam(r, "imageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		image, err := h.images.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project image", "project image", err))
			return
		}
		if image == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project image not found"))
			return
		}

		if err := h.images.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project image", "project image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project image deleted successfully",
		})
	}
}

// parseIDParam extracts and parses a uuid path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, *errs.ApiErr) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
