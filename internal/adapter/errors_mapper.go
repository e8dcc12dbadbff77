package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-share-cache/models"
)

// mapHTTPError turns a non-2xx response into an error. Statuses the server
// uses for shared sentinels map back to those sentinels; a 404 maps to a
// sentinel only when its body names the kind of object that was missing.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		switch {
		case strings.Contains(body, models.ErrRecordNotFound.Error()):
			return models.ErrRecordNotFound
		case strings.Contains(body, models.ErrZoneNotFound.Error()):
			return models.ErrZoneNotFound
		}
		// a 404 without a sentinel comes from a wrong path or a proxy
		return fmt.Errorf("%w: http 404: %s", ErrUnexpectedStatus, body)
	case http.StatusGone:
		return models.ErrChangeTokenExpired
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
