package project

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/resourceflow/resourceflow/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ProjectDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Color     string `json:"color,omitempty"`
	Status    string `json:"status"`
}

type ProjectHandler struct {
	projectService ProjectService
}

func NewProjectHandler(projectService ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService}
}

func (handler *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projects, err := handler.projectService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	projectsDTO := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		projectsDTO = append(projectsDTO, ProjectToDTO(p))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(projectsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new project")
	w.Header().Set("Content-Type", "application/json")

	var projectDTO ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&projectDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	project, err := DTOToProject(projectDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	created, err := handler.projectService.Create(r.Context(), project)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ProjectToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	projectId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var projectDTO ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&projectDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	projectDTO.ID = projectId
	project, err := DTOToProject(projectDTO)
	if err != nil {
		writeInvalidDate(w, err)
		return
	}

	ok, err := handler.projectService.Update(r.Context(), project)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(projectDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	projectId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.projectService.Delete(r.Context(), projectId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Project not found", http.StatusNotFound)
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

func ProjectToDTO(project Project) ProjectDTO {
	dto := ProjectDTO{
		ID:     project.ID,
		Name:   project.Name,
		Color:  project.Color,
		Status: string(project.Status),
	}
	if !project.StartDate.IsZero() {
		dto.StartDate = project.StartDate.Format(dateLayout)
	}
	if !project.EndDate.IsZero() {
		dto.EndDate = project.EndDate.Format(dateLayout)
	}
	return dto
}

func DTOToProject(dto ProjectDTO) (Project, error) {
	project := Project{
		ID:     dto.ID,
		Name:   dto.Name,
		Color:  dto.Color,
		Status: ProjectStatus(dto.Status),
	}
	if dto.StartDate != "" {
		startDate, err := time.Parse(dateLayout, dto.StartDate)
		if err != nil {
			return Project{}, err
		}
		project.StartDate = startDate
	}
	if dto.EndDate != "" {
		endDate, err := time.Parse(dateLayout, dto.EndDate)
		if err != nil {
			return Project{}, err
		}
		project.EndDate = endDate
	}
	return project, nil
}
