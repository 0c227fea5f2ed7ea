package google

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/resourceflow/resourceflow/internal/rest"
	"github.com/resourceflow/resourceflow/pkg/holiday"
)

type CalendarItemDto struct {
	Id      string `json:"id"`
	Summary string `json:"summary"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s}
}

func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	calendars, err := h.service.ListCalendars(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	calendarItems := make([]CalendarItemDto, 0, len(calendars))
	for _, c := range calendars {
		calendarItems = append(calendarItems, toCalendarItemDto(c))
	}

	if err := json.NewEncoder(w).Encode(calendarItems); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	calendarId := query.Get("calendarId")
	if calendarId == "" {
		writeImportError(w, "Invalid request", "calendarId is required")
		return
	}
	country := holiday.Country(query.Get("country"))
	if !country.IsValid() {
		writeImportError(w, "Invalid country", "country must be one of: canada, brazil, both")
		return
	}
	from, err := time.Parse("2006-01-02", query.Get("from"))
	if err != nil {
		writeImportError(w, "Invalid date format", "from must be formatted as YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", query.Get("to"))
	if err != nil {
		writeImportError(w, "Invalid date format", "to must be formatted as YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		writeImportError(w, "Invalid date range", "to must not be before from")
		return
	}

	imported, err := h.service.ImportHolidays(r.Context(), calendarId, from, to, country)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	holidaysDTO := make([]holiday.HolidayDTO, 0, len(imported))
	for _, imp := range imported {
		holidaysDTO = append(holidaysDTO, holiday.HolidayToDTO(imp))
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(holidaysDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeImportError(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func toCalendarItemDto(ci CalendarItem) CalendarItemDto {
	return CalendarItemDto{
		Id:      ci.ID,
		Summary: ci.Summary,
	}
}
