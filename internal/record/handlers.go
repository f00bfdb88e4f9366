package record

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/api"
	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
	"evalhub/internal/middleware"
)

type Handler struct {
	Store       *Store
	Evaluations *evaluation.Store
	Directory   *directory.Store
}

func NewHandler(store *Store, evaluations *evaluation.Store, dir *directory.Store) *Handler {
	return &Handler{Store: store, Evaluations: evaluations, Directory: dir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluation-records", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/", h.handleSubmit)
		r.Get("/evaluation/{evaluationID}", h.handleListByEvaluation)
		r.Get("/department/{departmentID}", h.handleListByDepartment)
		r.Get("/targeting/{evaluationID}", h.handleTargeting)
	})
}

// handleTargeting resolves who the current user evaluates for a template, so
// the console can prefill the form and offer the right candidate list.
func (h *Handler) handleTargeting(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	eval, targeting, err := h.resolveFor(r, chi.URLParam(r, "evaluationID"), user.UserID, user.Role)
	if err != nil {
		h.failResolve(w, r, err)
		return
	}

	api.Success(w, map[string]any{
		"evaluation":   eval,
		"targeting":    targeting,
		"ratingLabels": RatingLabels(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	// The evaluator is the authenticated caller, never the payload.
	sub.Evaluator = user.UserID

	eval, targeting, err := h.resolveFor(r, sub.EvaluationID, user.UserID, user.Role)
	if err != nil {
		h.failResolve(w, r, err)
		return
	}
	sub.DepartmentID = eval.DepartmentID

	if err := ValidateSubmission(*eval, sub); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_submission", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err := ValidateTarget(targeting, sub); err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_target", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	// UX pre-check; the unique index decides under races.
	exists, err := h.Store.Exists(r.Context(), sub.EvaluationID, sub.Evaluator)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_create_failed", "failed to create record", middleware.GetRequestID(r.Context()))
		return
	}
	if exists {
		api.Fail(w, http.StatusConflict, "already_submitted", "you have already answered this evaluation", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.Create(r.Context(), sub)
	if errors.Is(err, ErrDuplicate) {
		api.Fail(w, http.StatusConflict, "already_submitted", "you have already answered this evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_create_failed", "failed to create record", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByEvaluation(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListByEvaluation(r.Context(), chi.URLParam(r, "evaluationID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_list_failed", "failed to list records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByDepartment(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListByDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_list_failed", "failed to list records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) resolveFor(r *http.Request, evaluationID, userID, role string) (*evaluation.Evaluation, Targeting, error) {
	eval, err := h.Evaluations.Get(r.Context(), evaluationID)
	if err != nil {
		return nil, Targeting{}, err
	}

	employees, err := h.Directory.ListEmployees(r.Context())
	if err != nil {
		return nil, Targeting{}, err
	}
	departments, err := h.Directory.ListDepartments(r.Context())
	if err != nil {
		return nil, Targeting{}, err
	}

	targeting, err := ResolveTargeting(*eval, Actor{UserID: userID, Role: role}, employees, departments)
	if err != nil {
		return nil, Targeting{}, err
	}
	return eval, targeting, nil
}

func (h *Handler) failResolve(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, evaluation.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
	case errors.As(err, &verr):
		api.Fail(w, http.StatusBadRequest, "invalid_evaluation", verr.Message, middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "targeting_failed", "failed to resolve evaluation target", middleware.GetRequestID(r.Context()))
	}
}
