package report

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/api"
	"evalhub/internal/auth"
	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
	"evalhub/internal/middleware"
	"evalhub/internal/record"
)

type Handler struct {
	Records     *record.Store
	Evaluations *evaluation.Store
	Directory   *directory.Store
	ReportsDir  string
}

func NewHandler(records *record.Store, evaluations *evaluation.Store, dir *directory.Store, reportsDir string) *Handler {
	return &Handler{Records: records, Evaluations: evaluations, Directory: dir, ReportsDir: reportsDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/dashboard", h.handleDashboard)
		r.Route("/departments/{departmentID}", func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Get("/", h.handleRollup)
			r.Get("/pdf", h.handleRollupPDF)
			r.Get("/xlsx", h.handleRollupXLSX)
		})
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employees, err := h.Directory.ListEmployees(r.Context())
	if err != nil {
		h.failInternal(w, r, "dashboard_failed")
		return
	}
	departments, err := h.Directory.ListDepartments(r.Context())
	if err != nil {
		h.failInternal(w, r, "dashboard_failed")
		return
	}

	// The actor's department: own employee record first, managed department
	// as the fallback for managers without an employee row.
	var departmentID string
	if emp, ok := directory.FindByUser(employees, user.UserID); ok {
		departmentID = emp.DepartmentID
	} else if user.Role == auth.RoleManager {
		for _, dept := range departments {
			if dept.ManagerID == user.UserID {
				departmentID = dept.ID
				break
			}
		}
	}

	var evaluations []evaluation.Evaluation
	var records []record.Record
	if departmentID != "" {
		if evaluations, err = h.Evaluations.ListByDepartment(r.Context(), departmentID, true); err != nil {
			h.failInternal(w, r, "dashboard_failed")
			return
		}
		if records, err = h.Records.ListByDepartment(r.Context(), departmentID); err != nil {
			h.failInternal(w, r, "dashboard_failed")
			return
		}
	}

	api.Success(w, map[string]any{
		"counts":  DashboardCounts(evaluations, records, len(employees)),
		"pending": PendingEvaluations(evaluations, records, user.UserID),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRollup(w http.ResponseWriter, r *http.Request) {
	dept, averages, records, ok := h.loadRollup(w, r)
	if !ok {
		return
	}

	api.Success(w, map[string]any{
		"department":  dept,
		"recordCount": len(records),
		"averages":    averages,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRollupPDF(w http.ResponseWriter, r *http.Request) {
	dept, averages, records, ok := h.loadRollup(w, r)
	if !ok {
		return
	}

	filePath, err := WriteDepartmentPDF(h.ReportsDir, dept, averages, len(records))
	if err != nil {
		h.failInternal(w, r, "report_pdf_failed")
		return
	}
	defer os.Remove(filePath)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "rollup-"+dept.ID+".pdf"))
	http.ServeFile(w, r, filePath)
}

func (h *Handler) handleRollupXLSX(w http.ResponseWriter, r *http.Request) {
	dept, averages, records, ok := h.loadRollup(w, r)
	if !ok {
		return
	}

	workbook, err := BuildDepartmentWorkbook(dept, averages, records)
	if err != nil {
		h.failInternal(w, r, "report_xlsx_failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "rollup-"+dept.ID+".xlsx"))
	if err := workbook.Write(w); err != nil {
		// Headers are gone; nothing left to do but log via the middleware.
		return
	}
}

func (h *Handler) loadRollup(w http.ResponseWriter, r *http.Request) (directory.Department, []record.CompetencyAverage, []record.Record, bool) {
	departmentID := chi.URLParam(r, "departmentID")

	departments, err := h.Directory.ListDepartments(r.Context())
	if err != nil {
		h.failInternal(w, r, "report_failed")
		return directory.Department{}, nil, nil, false
	}
	dept, found := directory.FindDepartment(departments, departmentID)
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return directory.Department{}, nil, nil, false
	}

	records, err := h.Records.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		h.failInternal(w, r, "report_failed")
		return directory.Department{}, nil, nil, false
	}

	return dept, record.AggregateDepartment(records), records, true
}

func (h *Handler) failInternal(w http.ResponseWriter, r *http.Request, code string) {
	api.Fail(w, http.StatusInternalServerError, code, "report generation failed", middleware.GetRequestID(r.Context()))
}
