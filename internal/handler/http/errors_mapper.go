package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is checked in order; the first match wins. Its messages are
// sent to clients, which map them back to the same sentinels.
var errorStatusMap = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{models.ErrChangeTokenExpired, http.StatusGone},
	{models.ErrZoneNotFound, http.StatusNotFound},
	{models.ErrRecordNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// classifyError returns the response status for err and the message that
// is safe to show to clients.
func classifyError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			if entry.status == http.StatusBadRequest {
				// validation details help the client fix its request
				return entry.status, err.Error()
			}
			return entry.status, entry.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func writeError(w http.ResponseWriter, err error) {
	status, message := classifyError(err)
	http.Error(w, message, status)
}
