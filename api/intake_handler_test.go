package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenatech-mv/site-backend/services"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSubmitContact(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{
		"name": "Aishath",
		"email": "aishath@example.com",
		"phone": "+9607777777",
		"message": "Need a quote for cameras"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, services.NotificationContact, notifier.lastKind)
	assert.Equal(t, "Aishath", notifier.lastFields.Name)
	assert.Equal(t, "Need a quote for cameras", notifier.lastFields.Message)
}

func TestSubmitContactRequiresName(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{"email": "a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, notifier.calls)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, notifier.calls)
}

func TestSubmitContactNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{err: services.ErrSendFailed}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{"name": "Ali"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSubmitContactNotConfigured(t *testing.T) {
	// A deployment without Telegram credentials degrades the same way a
	// delivery failure does
	notifier := &fakeNotifier{err: services.ErrNotConfigured}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{"name": "Ali"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSubmitQuoteComposesFields(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitQuote(), `{
		"name": "Hassan",
		"email": "hassan@example.com",
		"service": "CCTV Security",
		"projectType": "New Installation",
		"budget": "10k-25k",
		"timeline": "1-3 months",
		"location": "Male",
		"description": "12 cameras across two floors",
		"urgency": "high"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.NotificationQuote, notifier.lastKind)
	assert.Equal(t, "CCTV Security - New Installation", notifier.lastFields.Service)
	assert.Equal(t, "Location: Male\nDetails: 12 cameras across two floors\nPriority: HIGH", notifier.lastFields.Message)
	assert.Equal(t, "10k-25k", notifier.lastFields.Budget)
}

func TestSubmitQuotePartialComposition(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitQuote(), `{"name": "Hassan", "projectType": "Upgrade", "description": "replace DVR"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Upgrade", notifier.lastFields.Service)
	assert.Equal(t, "Details: replace DVR", notifier.lastFields.Message)
}

func TestNotifyPassesFieldsThrough(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.notify(), `{
		"type": "quote",
		"data": {
			"name": "Hassan",
			"service": "Networking",
			"message": "prebuilt message"
		}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.NotificationQuote, notifier.lastKind)
	assert.Equal(t, "Networking", notifier.lastFields.Service)
	assert.Equal(t, "prebuilt message", notifier.lastFields.Message)
}

func TestNotifyUnknownTypeDefaultsToContact(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.notify(), `{"type": "whatever", "data": {"name": "Ali"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.NotificationContact, notifier.lastKind)
}

func TestComposeQuoteMessageEmpty(t *testing.T) {
	assert.Equal(t, "", composeQuoteMessage("", "", ""))
}

func TestForwardWrapsUnknownErrors(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("boom")}
	handler := newIntakeHandler(notifier)

	rec := postJSON(t, handler.submitContact(), `{"name": "Ali"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
