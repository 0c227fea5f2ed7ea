package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/resourceflow/resourceflow/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Health check
	r.HandleFunc("/api/hello", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	// Team members
	r.HandleFunc("/api/team-members", deps.MemberHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/team-members", deps.MemberHandler.Create).Methods("POST")
	r.HandleFunc("/api/team-members/{id}", deps.MemberHandler.Update).Methods("PUT")
	r.HandleFunc("/api/team-members/{id}", deps.MemberHandler.Delete).Methods("DELETE")

	// Projects
	r.HandleFunc("/api/projects", deps.ProjectHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/projects", deps.ProjectHandler.Create).Methods("POST")
	r.HandleFunc("/api/projects/{id}", deps.ProjectHandler.Update).Methods("PUT")
	r.HandleFunc("/api/projects/{id}", deps.ProjectHandler.Delete).Methods("DELETE")

	// Holidays
	r.HandleFunc("/api/holidays", deps.HolidayHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/holidays", deps.HolidayHandler.Create).Methods("POST")
	r.HandleFunc("/api/holidays/{id}", deps.HolidayHandler.Update).Methods("PUT")
	r.HandleFunc("/api/holidays/{id}", deps.HolidayHandler.Delete).Methods("DELETE")

	// Vacations
	r.HandleFunc("/api/vacations", deps.VacationHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/vacations", deps.VacationHandler.Create).Methods("POST")
	r.HandleFunc("/api/vacations/{id}", deps.VacationHandler.Update).Methods("PUT")
	r.HandleFunc("/api/vacations/{id}", deps.VacationHandler.Delete).Methods("DELETE")

	// Project allocations
	r.HandleFunc("/api/project-allocations", deps.AllocationHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/project-allocations", deps.AllocationHandler.Create).Methods("POST")
	r.HandleFunc("/api/project-allocations/{id}", deps.AllocationHandler.Update).Methods("PUT")
	r.HandleFunc("/api/project-allocations/{id}", deps.AllocationHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/project-allocations/{id}/shift", deps.AllocationHandler.Shift).Methods("PATCH")
	r.HandleFunc("/api/project-allocations/{id}/resize", deps.AllocationHandler.Resize).Methods("PATCH")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.Update).Methods("PUT")

	// Capacity report
	r.HandleFunc("/api/capacity/report", deps.CapacityHandler.GetReport).Methods("GET")

	// Export / import
	r.HandleFunc("/api/export", deps.TransferHandler.Export).Methods("GET")
	r.HandleFunc("/api/import", deps.TransferHandler.Import).Methods("POST")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
	r.HandleFunc("/api/integrations/google/import-holidays", deps.GoogleHandler.ImportHolidays).Methods("POST")
}
