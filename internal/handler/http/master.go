package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/company"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/handler/http/response"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/service/master"
)

type MasterHandler interface {
	// Company handlers
	CreateCompany(w http.ResponseWriter, r *http.Request)
	GetCompany(w http.ResponseWriter, r *http.Request)
	ListCompanies(w http.ResponseWriter, r *http.Request)

	// Employee handlers
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)

	// Shift handlers
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	// Holiday handlers
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	// Leave handlers
	CreateLeave(w http.ResponseWriter, r *http.Request)
	SetLeaveStatus(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== COMPANY HANDLERS ====================

func (h *masterHandlerImpl) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var co company.Company
	if err := json.NewDecoder(r.Body).Decode(&co); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateCompany(r.Context(), co)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company created", created)
}

func (h *masterHandlerImpl) GetCompany(w http.ResponseWriter, r *http.Request) {
	co, err := h.masterService.GetCompany(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, co)
}

func (h *masterHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.masterService.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companies)
}

// ==================== EMPLOYEE HANDLERS ====================

func (h *masterHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	created, err := h.masterService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", created)
}

func (h *masterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.masterService.GetEmployee(r.Context(),
		chi.URLParam(r, "employeeID"), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

func (h *masterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.masterService.ListEmployees(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// ==================== SHIFT HANDLERS ====================

func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	created, err := h.masterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created", created)
}

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.masterService.ListShifts(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

func (h *masterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	err := h.masterService.DeleteShift(r.Context(),
		chi.URLParam(r, "shiftID"), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// ==================== HOLIDAY HANDLERS ====================

func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	created, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday created", created)
}

func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	err := h.masterService.DeleteHoliday(r.Context(),
		chi.URLParam(r, "holidayID"), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// ==================== LEAVE HANDLERS ====================

func (h *masterHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	created, err := h.masterService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave application created", created)
}

func (h *masterHandlerImpl) SetLeaveStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if !validator.IsInSlice(body.Status, []string{
		string(leave.LeaveStatusPending),
		string(leave.LeaveStatusApproved),
		string(leave.LeaveStatusRejected),
	}) {
		response.BadRequest(w, "status must be pending, approved or rejected", nil)
		return
	}

	err := h.masterService.SetLeaveStatus(r.Context(),
		chi.URLParam(r, "leaveID"), chi.URLParam(r, "companyID"),
		leave.LeaveStatus(body.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave status updated", nil)
}
