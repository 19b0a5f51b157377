package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zenatech-mv/site-backend/errs"
	"github.com/zenatech-mv/site-backend/services"
)

// notifier is the slice of the notification service the handler needs.
type notifier interface {
	Send(kind services.NotificationKind, fields services.NotificationFields) error
}

// intakeHandler accepts visitor form submissions and forwards them to the
// operators' Telegram chat. Submissions are not persisted; the chat is the
// system of record for leads.
type intakeHandler struct {
	responder Responder
	logger    zerolog.Logger
	notifier  notifier
}

func newIntakeHandler(n notifier) intakeHandler {
	logger := log.With().Str("handlerName", "intakeHandler").Logger()

	return intakeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		notifier:  n,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type quoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Service     string `json:"service"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

// notifyRequest is the raw forwarding surface: the caller supplies the
// notification type and the already-assembled fields.
type notifyRequest struct {
	Type string                      `json:"type"`
	Data services.NotificationFields `json:"data"`
}

func (h intakeHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		fields := services.NotificationFields{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Message: req.Message,
		}

		h.forward(w, services.NotificationContact, fields)
	}
}

// submitQuote flattens the quote form into notification fields. Service and
// project type merge into one line; location, description, and urgency merge
// into the message body.
func (h intakeHandler) submitQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode quote request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		fields := services.NotificationFields{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Company:  req.Company,
			Service:  composeService(req.Service, req.ProjectType),
			Budget:   req.Budget,
			Timeline: req.Timeline,
			Message:  composeQuoteMessage(req.Location, req.Description, req.Urgency),
		}

		h.forward(w, services.NotificationQuote, fields)
	}
}

// notify is the raw endpoint the site's forms post to when they have already
// assembled the fields themselves.
func (h intakeHandler) notify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req notifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode notify request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Data.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		kind := services.NotificationContact
		if req.Type == string(services.NotificationQuote) {
			kind = services.NotificationQuote
		}

		h.forward(w, kind, req.Data)
	}
}

func (h intakeHandler) forward(w http.ResponseWriter, kind services.NotificationKind, fields services.NotificationFields) {
	if err := h.notifier.Send(kind, fields); err != nil {
		h.responder.WriteError(w, errs.NewNotifierError(err))
		return
	}

	h.responder.WriteJSON(w, map[string]string{
		"status":  "success",
		"message": "notification sent",
	})
}

func composeService(service, projectType string) string {
	if service == "" {
		return projectType
	}
	if projectType == "" {
		return service
	}
	return fmt.Sprintf("%s - %s", service, projectType)
}

func composeQuoteMessage(location, description, urgency string) string {
	var parts []string
	if location != "" {
		parts = append(parts, "Location: "+location)
	}
	if description != "" {
		parts = append(parts, "Details: "+description)
	}
	if urgency != "" {
		parts = append(parts, "Priority: "+strings.ToUpper(urgency))
	}
	return strings.Join(parts, "\n")
}
