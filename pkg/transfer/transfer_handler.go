package transfer

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type TransferHandler struct {
	transferService TransferService
}

func NewTransferHandler(transferService TransferService) *TransferHandler {
	return &TransferHandler{transferService}
}

func (handler *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	envelope, err := handler.transferService.Export(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=resourceflow-export-%s.json", envelope.ExportedAt.Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing data snapshot")
	w.Header().Set("Content-Type", "application/json")

	var envelope Envelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.transferService.Import(r.Context(), envelope); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "imported"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
