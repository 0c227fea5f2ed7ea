package holiday

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/resourceflow/resourceflow/internal/rest"
	log "github.com/sirupsen/logrus"
)

type HolidayDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Country string `json:"country"`
}

type HolidayHandler struct {
	holidayService HolidayService
}

func NewHolidayHandler(holidayService HolidayService) *HolidayHandler {
	return &HolidayHandler{holidayService}
}

func (handler *HolidayHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year := 0
	if yearString := r.URL.Query().Get("year"); yearString != "" {
		parsed, err := strconv.Atoi(yearString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid year",
				Details: "year must be an integer",
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		year = parsed
	}

	holidays, err := handler.holidayService.GetAll(r.Context(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	holidaysDTO := make([]HolidayDTO, 0, len(holidays))
	for _, h := range holidays {
		holidaysDTO = append(holidaysDTO, HolidayToDTO(h))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(holidaysDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *HolidayHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new holiday")
	w.Header().Set("Content-Type", "application/json")

	var holidayDTO HolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&holidayDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	holiday, err := DTOToHoliday(holidayDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	created, err := handler.holidayService.Create(r.Context(), holiday)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(HolidayToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *HolidayHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	holidayId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var holidayDTO HolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&holidayDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	holidayDTO.ID = holidayId
	holiday, err := DTOToHoliday(holidayDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	ok, err := handler.holidayService.Update(r.Context(), holiday)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Holiday not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(holidayDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *HolidayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	holidayId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.holidayService.Delete(r.Context(), holidayId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Holiday not found", http.StatusNotFound)
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

func HolidayToDTO(holiday Holiday) HolidayDTO {
	return HolidayDTO{
		ID:      holiday.ID,
		Name:    holiday.Name,
		Date:    holiday.Date.Format(dateLayout),
		Country: string(holiday.Country),
	}
}

func DTOToHoliday(dto HolidayDTO) (Holiday, error) {
	holiday := Holiday{
		ID:      dto.ID,
		Name:    dto.Name,
		Country: Country(dto.Country),
	}
	if dto.Date != "" {
		date, err := time.Parse(dateLayout, dto.Date)
		if err != nil {
			return Holiday{}, err
		}
		holiday.Date = date
	}
	return holiday, nil
}
