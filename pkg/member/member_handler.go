package member

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MemberDTO struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role,omitempty"`
	Country        string   `json:"country"`
	AllocatedHours *float64 `json:"allocatedHours,omitempty"`
	Active         bool     `json:"active"`
}

type MemberHandler struct {
	memberService MemberService
}

func NewMemberHandler(memberService MemberService) *MemberHandler {
	return &MemberHandler{memberService}
}

func (handler *MemberHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	onlyActive := r.URL.Query().Has("onlyActive")

	members, err := handler.memberService.GetAll(r.Context(), onlyActive)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	membersDTO := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		membersDTO = append(membersDTO, MemberToDTO(m))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(membersDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new team member")
	w.Header().Set("Content-Type", "application/json")

	var memberDTO MemberDTO
	if err := json.NewDecoder(r.Body).Decode(&memberDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.memberService.Create(r.Context(), DTOToMember(memberDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(MemberToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	memberId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var memberDTO MemberDTO
	if err := json.NewDecoder(r.Body).Decode(&memberDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	memberDTO.ID = memberId

	ok, err := handler.memberService.Update(r.Context(), DTOToMember(memberDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Team member not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(memberDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	memberId, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.memberService.Delete(r.Context(), memberId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Team member not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func MemberToDTO(member Member) MemberDTO {
	return MemberDTO{
		ID:             member.ID,
		Name:           member.Name,
		Role:           member.Role,
		Country:        string(member.Country),
		AllocatedHours: member.AllocatedHours,
		Active:         member.Active,
	}
}

func DTOToMember(dto MemberDTO) Member {
	return Member{
		ID:             dto.ID,
		Name:           dto.Name,
		Role:           dto.Role,
		Country:        Country(dto.Country),
		AllocatedHours: dto.AllocatedHours,
		Active:         dto.Active,
	}
}
