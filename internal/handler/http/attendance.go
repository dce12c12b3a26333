package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/handler/http/response"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type AttendanceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ImportPunches(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Generate implements AttendanceHandler.
func (h *attendanceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req attendance.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	summary, err := h.attendanceService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance generated", summary)
}

// Preview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req attendance.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.attendanceService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := attendance.GenerateRequest{
		CompanyID: chi.URLParam(r, "companyID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeIDs = []string{employeeID}
	}

	summaries, err := h.attendanceService.Summarize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// ImportPunches implements AttendanceHandler.
func (h *attendanceHandlerImpl) ImportPunches(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportPunchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	summary, err := h.attendanceService.ImportPunches(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punches imported", summary)
}

// ListResults implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListResults(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ResultFilter{
		CompanyID:  chi.URLParam(r, "companyID"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		start, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.StartDate = &start
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		end, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.EndDate = &end
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.attendanceService.ListResults(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(list.TotalCount) / list.Limit
	if int(list.TotalCount)%list.Limit > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, list.Results, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: totalPages,
	})
}

// GetConfig implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.attendanceService.GetConfig(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

// UpdateConfig implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	cfg, err := h.attendanceService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Configuration updated", cfg)
}
