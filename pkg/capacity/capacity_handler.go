package capacity

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/resourceflow/resourceflow/internal/rest"
	"github.com/resourceflow/resourceflow/pkg/member"
)

type ProjectHoursDTO struct {
	ProjectID int     `json:"projectId"`
	Hours     float64 `json:"hours"`
}

type MemberReportDTO struct {
	Member         member.MemberDTO  `json:"member"`
	AvailableHours float64           `json:"availableHours"`
	AllocatedHours float64           `json:"allocatedHours"`
	HolidayHours   float64           `json:"holidayHours"`
	VacationHours  float64           `json:"vacationHours"`
	Utilization    float64           `json:"utilization"`
	Projects       []ProjectHoursDTO `json:"projects"`
}

type MonthlyReportDTO struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Members []MemberReportDTO `json:"members"`
}

type CapacityHandler struct {
	capacityService CapacityService
}

func NewCapacityHandler(capacityService CapacityService) *CapacityHandler {
	return &CapacityHandler{capacityService}
}

func (handler *CapacityHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year := 0
	month := time.January
	yearString := r.URL.Query().Get("year")
	monthString := r.URL.Query().Get("month")
	if yearString != "" || monthString != "" {
		parsedYear, err := strconv.Atoi(yearString)
		if err != nil {
			writeBadRequest(w, "Invalid year", "year must be an integer")
			return
		}
		parsedMonth, err := strconv.Atoi(monthString)
		if err != nil || parsedMonth < 1 || parsedMonth > 12 {
			writeBadRequest(w, "Invalid month", "month must be an integer between 1 and 12")
			return
		}
		year = parsedYear
		month = time.Month(parsedMonth)
	}

	report, err := handler.capacityService.MonthlyReport(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reportToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func reportToDTO(report MonthlyReport) MonthlyReportDTO {
	dto := MonthlyReportDTO{
		Year:    report.Year,
		Month:   int(report.Month),
		Members: make([]MemberReportDTO, 0, len(report.Members)),
	}
	for _, memberReport := range report.Members {
		projects := make([]ProjectHoursDTO, 0, len(memberReport.Projects))
		for _, projectHours := range memberReport.Projects {
			projects = append(projects, ProjectHoursDTO{
				ProjectID: projectHours.ProjectID,
				Hours:     projectHours.Hours,
			})
		}
		dto.Members = append(dto.Members, MemberReportDTO{
			Member:         member.MemberToDTO(memberReport.Member),
			AvailableHours: memberReport.AvailableHours,
			AllocatedHours: memberReport.AllocatedHours,
			HolidayHours:   memberReport.HolidayHours,
			VacationHours:  memberReport.VacationHours,
			Utilization:    memberReport.Utilization,
			Projects:       projects,
		})
	}
	return dto
}
