package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/models"
)

func (h *Handler) recordChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RecordChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.recordChanges").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	batch, err := h.services.ChangeFeed.RecordChanges(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordChanges").Str("zone_id", string(req.ZoneID)).Msg("error reading record changes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}

func (h *Handler) modifyRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ModifyRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.modifyRecords").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	resp, err := h.services.ChangeFeed.ModifyRecords(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.modifyRecords").Str("zone_id", string(req.ZoneID)).Msg("error modifying records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
