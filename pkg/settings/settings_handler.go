package settings

import (
	"encoding/json"
	"net/http"
)

type SettingsDTO struct {
	BufferPercent     float64 `json:"bufferPercent"`
	CanadaWeeklyHours float64 `json:"canadaWeeklyHours"`
	BrazilWeeklyHours float64 `json:"brazilWeeklyHours"`
}

type SettingsHandler struct {
	settingsService SettingsService
}

func NewSettingsHandler(settingsService SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService}
}

func (handler *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := handler.settingsService.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SettingsToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var settingsDTO SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&settingsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.settingsService.Update(r.Context(), DTOToSettings(settingsDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SettingsToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SettingsToDTO(settings Settings) SettingsDTO {
	return SettingsDTO{
		BufferPercent:     settings.BufferPercent,
		CanadaWeeklyHours: settings.CanadaWeeklyHours,
		BrazilWeeklyHours: settings.BrazilWeeklyHours,
	}
}

func DTOToSettings(dto SettingsDTO) Settings {
	return Settings{
		BufferPercent:     dto.BufferPercent,
		CanadaWeeklyHours: dto.CanadaWeeklyHours,
		BrazilWeeklyHours: dto.BrazilWeeklyHours,
	}
}
