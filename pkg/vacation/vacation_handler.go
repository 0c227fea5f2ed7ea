package vacation

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

type VacationDTO struct {
	ID           int    `json:"id"`
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Type         string `json:"type,omitempty"`
}

type VacationHandler struct {
	vacationService VacationService
}

func NewVacationHandler(vacationService VacationService) *VacationHandler {
	return &VacationHandler{vacationService}
}

func (handler *VacationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	employeeId := 0
	if employeeIdString := r.URL.Query().Get("employeeId"); employeeIdString != "" {
		parsed, err := strconv.Atoi(employeeIdString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid employeeId",
				Details: "employeeId must be an integer",
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		employeeId = parsed
	}

	vacations, err := handler.vacationService.GetAll(r.Context(), employeeId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	vacationsDTO := make([]VacationDTO, 0, len(vacations))
	for _, v := range vacations {
		vacationsDTO = append(vacationsDTO, VacationToDTO(v))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vacationsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VacationHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new vacation")
	w.Header().Set("Content-Type", "application/json")

	var vacationDTO VacationDTO
	if err := json.NewDecoder(r.Body).Decode(&vacationDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vacation, err := DTOToVacation(vacationDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	created, err := handler.vacationService.Create(r.Context(), vacation)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, ErrInvalidDateRange) && !errors.Is(err, ErrUnknownEmployee) {
			status = http.StatusInternalServerError
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(VacationToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VacationHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	vacationId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var vacationDTO VacationDTO
	if err := json.NewDecoder(r.Body).Decode(&vacationDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vacationDTO.ID = vacationId
	vacation, err := DTOToVacation(vacationDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	ok, err := handler.vacationService.Update(r.Context(), vacation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Vacation not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vacationDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VacationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	vacationId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.vacationService.Delete(r.Context(), vacationId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Vacation not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeInvalidDate(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid date format",
		Details: err.Error(),
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func VacationToDTO(vacation Vacation) VacationDTO {
	return VacationDTO{
		ID:           vacation.ID,
		EmployeeID:   vacation.EmployeeID,
		EmployeeName: vacation.EmployeeName,
		StartDate:    vacation.StartDate.Format(dateLayout),
		EndDate:      vacation.EndDate.Format(dateLayout),
		Type:         vacation.Type,
	}
}

func DTOToVacation(dto VacationDTO) (Vacation, error) {
	vacation := Vacation{
		ID:           dto.ID,
		EmployeeID:   dto.EmployeeID,
		EmployeeName: dto.EmployeeName,
		Type:         dto.Type,
	}
	if dto.StartDate != "" {
		startDate, err := time.Parse(dateLayout, dto.StartDate)
		if err != nil {
			return Vacation{}, err
		}
		vacation.StartDate = startDate
	}
	if dto.EndDate != "" {
		endDate, err := time.Parse(dateLayout, dto.EndDate)
		if err != nil {
			return Vacation{}, err
		}
		vacation.EndDate = endDate
	}
	return vacation, nil
}
