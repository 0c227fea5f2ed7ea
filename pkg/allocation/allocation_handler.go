package allocation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/resourceflow/resourceflow/internal/rest"
	log "github.com/sirupsen/logrus"
)

type AllocationDTO struct {
	ID          int     `json:"id"`
	EmployeeID  int     `json:"employeeId"`
	ProjectID   int     `json:"projectId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	HoursPerDay float64 `json:"hoursPerDay"`
	Status      string  `json:"status"`
}

type AllocationHandler struct {
	allocationService AllocationService
}

func NewAllocationHandler(allocationService AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService}
}

func (handler *AllocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := parseFilter(r)
	if err != nil {
		writeBadRequest(w, "Invalid filter", err)
		return
	}

	allocations, err := handler.allocationService.GetAll(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	allocationsDTO := make([]AllocationDTO, 0, len(allocations))
	for _, a := range allocations {
		allocationsDTO = append(allocationsDTO, AllocationToDTO(a))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(allocationsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AllocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new allocation")
	w.Header().Set("Content-Type", "application/json")

	var allocationDTO AllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&allocationDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	alloc, err := DTOToAllocation(allocationDTO)
	if err != nil {
		writeBadRequest(w, "Invalid date format", err)
		return
	}

	created, err := handler.allocationService.Create(r.Context(), alloc)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AllocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	allocationId, ok := pathId(w, r)
	if !ok {
		return
	}
	var allocationDTO AllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&allocationDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	allocationDTO.ID = allocationId
	alloc, err := DTOToAllocation(allocationDTO)
	if err != nil {
		writeBadRequest(w, "Invalid date format", err)
		return
	}

	updated, err := handler.allocationService.Update(r.Context(), alloc)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AllocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	allocationId, ok := pathId(w, r)
	if !ok {
		return
	}

	deleted, err := handler.allocationService.Delete(r.Context(), allocationId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Allocation not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Shift handles the calendar drag interaction: the whole range moves by a day
// offset.
func (handler *AllocationHandler) Shift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	allocationId, ok := pathId(w, r)
	if !ok {
		return
	}

	var shiftDTO struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&shiftDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	shifted, err := handler.allocationService.Shift(r.Context(), allocationId, shiftDTO.Days)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(shifted)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Resize handles the calendar edge-drag interaction: one edge moves to a date.
func (handler *AllocationHandler) Resize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	allocationId, ok := pathId(w, r)
	if !ok {
		return
	}

	var resizeDTO struct {
		Edge string `json:"edge"`
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&resizeDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := time.Parse(dateLayout, resizeDTO.Date)
	if err != nil {
		writeBadRequest(w, "Invalid date format", err)
		return
	}

	resized, err := handler.allocationService.Resize(r.Context(), allocationId, ResizeEdge(resizeDTO.Edge), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(resized)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func pathId(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func parseFilter(r *http.Request) (Filter, error) {
	var filter Filter
	query := r.URL.Query()
	if employeeIdString := query.Get("employeeId"); employeeIdString != "" {
		employeeId, err := strconv.Atoi(employeeIdString)
		if err != nil {
			return Filter{}, err
		}
		filter.EmployeeID = employeeId
	}
	if projectIdString := query.Get("projectId"); projectIdString != "" {
		projectId, err := strconv.Atoi(projectIdString)
		if err != nil {
			return Filter{}, err
		}
		filter.ProjectID = projectId
	}
	if fromString := query.Get("from"); fromString != "" {
		from, err := time.Parse(dateLayout, fromString)
		if err != nil {
			return Filter{}, err
		}
		filter.From = from
	}
	if toString := query.Get("to"); toString != "" {
		to, err := time.Parse(dateLayout, toString)
		if err != nil {
			return Filter{}, err
		}
		filter.To = to
	}
	return filter, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrOverlap):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Allocation not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidHours):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBadRequest(w http.ResponseWriter, message string, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func AllocationToDTO(allocation Allocation) AllocationDTO {
	return AllocationDTO{
		ID:          allocation.ID,
		EmployeeID:  allocation.EmployeeID,
		ProjectID:   allocation.ProjectID,
		StartDate:   allocation.StartDate.Format(dateLayout),
		EndDate:     allocation.EndDate.Format(dateLayout),
		HoursPerDay: allocation.HoursPerDay,
		Status:      string(allocation.Status),
	}
}

func DTOToAllocation(dto AllocationDTO) (Allocation, error) {
	allocation := Allocation{
		ID:          dto.ID,
		EmployeeID:  dto.EmployeeID,
		ProjectID:   dto.ProjectID,
		HoursPerDay: dto.HoursPerDay,
		Status:      AllocationStatus(dto.Status),
	}
	if dto.StartDate != "" {
		startDate, err := time.Parse(dateLayout, dto.StartDate)
		if err != nil {
			return Allocation{}, err
		}
		allocation.StartDate = startDate
	}
	if dto.EndDate != "" {
		endDate, err := time.Parse(dateLayout, dto.EndDate)
		if err != nil {
			return Allocation{}, err
		}
		allocation.EndDate = endDate
	}
	return allocation, nil
}
