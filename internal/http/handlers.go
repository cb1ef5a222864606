package http

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/vokinneberg/askdesk/internal/dispatcher"
	"github.com/vokinneberg/askdesk/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_asker.go -package=http Asker

// Asker defines the interface for sending a question to the remote endpoint
type Asker interface {
	Ask(ctx context.Context, question string) (*types.AnswerPayload, error)
}

// pageData is what the page template renders
type pageData struct {
	Question string
	Kind     string
	Answer   template.HTML
}

type Handler struct {
	asker   Asker
	options []dispatcher.Option
	page    *template.Template
}

// NewHandlers initializes handlers with dependencies.
// options configure the dispatcher run for every submitted question.
func NewHandlers(asker Asker, options ...dispatcher.Option) *Handler {
	return &Handler{
		asker:   asker,
		options: options,
		page:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// PageHandler serves the page with an empty answer region
func (h *Handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, pageData{Kind: dispatcher.KindEmpty.String()})
}

// AskHandler runs one question cycle for the submitted form and serves
// the page with the resulting answer region
func (h *Handler) AskHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid form", err)
		return
	}
	question := r.PostFormValue("question")

	region := dispatcher.NewMemoryRegion()
	button := dispatcher.NewSubmitButton()
	dispatcher.Bind(r.Context(), h.asker, dispatcher.Controls{
		Input:  dispatcher.StaticInput(question),
		Submit: button,
		Output: region,
	}, h.options...)

	button.Click()

	view := region.Current()
	// the answer fragment is trusted markup from the dispatcher
	h.renderPage(w, http.StatusOK, pageData{
		Question: question,
		Kind:     view.Kind.String(),
		Answer:   template.HTML(view.Content),
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Execute(w, data); err != nil {
		slog.Error("Error rendering page", "error", err)
	}
}

// HealthHandler reports that the web host is up
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
