package directory

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
	r.Get("/me", h.handleMe)
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleListEmployees)
		r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).Put("/", h.handleUpdateEmployee)
		})
	})
	r.Route("/departments", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleListDepartments)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/", h.handleCreateDepartment)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/{departmentID}", h.handleUpdateDepartment)
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Store.GetEmployeeByUser(r.Context(), user.UserID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusInternalServerError, "me_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"user":     user,
		"employee": emp,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, VisibleEmployees(employees, departments, user.UserID, user.Role), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	if user.Role == auth.RoleEmployee && emp.UserID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee name is required", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "employeeID")

	err := h.Store.UpdateEmployee(r.Context(), payload)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": payload.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "department name is required", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.CreateDepartment(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_create_failed", "failed to create department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "departmentID")

	err := h.Store.UpdateDepartment(r.Context(), payload)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_update_failed", "failed to update department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": payload.ID}, middleware.GetRequestID(r.Context()))
}
