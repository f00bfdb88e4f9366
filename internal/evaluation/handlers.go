package evaluation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/api"
	"evalhub/internal/auth"
	"evalhub/internal/middleware"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Get("/department/{departmentID}", h.handleListByDepartment)
		r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).Post("/", h.handleCreate)
		r.Route("/{evaluationID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).Put("/", h.handleUpdate)
			r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).Post("/publish", h.handlePublish)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByDepartment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	// Non-admins only see templates that have been published to the department.
	publishedOnly := user.Role != auth.RoleAdmin
	evaluations, err := h.Store.ListByDepartment(r.Context(), chi.URLParam(r, "departmentID"), publishedOnly)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	eval, err := h.Store.Get(r.Context(), chi.URLParam(r, "evaluationID"))
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_get_failed", "failed to load evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, eval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload Evaluation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := Validate(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_evaluation", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.Create(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_create_failed", "failed to create evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload Evaluation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "evaluationID")

	if err := Validate(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_evaluation", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Store.Update(r.Context(), payload)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_update_failed", "failed to update evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": payload.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Published bool `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	evaluationID := chi.URLParam(r, "evaluationID")
	err := h.Store.SetPublished(r.Context(), evaluationID, payload.Published)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_publish_failed", "failed to update publish flag", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"id": evaluationID, "published": payload.Published}, middleware.GetRequestID(r.Context()))
}
