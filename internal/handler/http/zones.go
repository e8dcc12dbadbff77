package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/models"
)

func (h *Handler) zoneChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ZoneChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.zoneChanges").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	batch, err := h.services.ChangeFeed.ZoneChanges(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.zoneChanges").Str("scope", string(req.Scope)).Msg("error reading zone changes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}

func (h *Handler) saveZone(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveZone").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	zone, err := h.services.ChangeFeed.SaveZone(r.Context(), req.Zone)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveZone").Str("zone_id", string(req.Zone.ID)).Msg("error saving zone")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, zone, http.StatusOK)
}

func (h *Handler) deleteZone(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	zoneID := models.ZoneID(chi.URLParam(r, "zoneID"))

	if err := h.services.ChangeFeed.DeleteZone(r.Context(), zoneID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteZone").Str("zone_id", string(zoneID)).Msg("error deleting zone")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
