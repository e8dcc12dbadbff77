package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the server at
// cfg.HTTPAddress, which may omit the scheme.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) FetchZoneChanges(ctx context.Context, scope models.Scope, token models.ChangeToken) (models.ZoneChangeBatch, error) {
	var batch models.ZoneChangeBatch

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ZoneChangesRequest{Scope: scope, Token: token}).
		SetResult(&batch).
		Post("/api/zones/changes")
	if err != nil {
		return models.ZoneChangeBatch{}, fmt.Errorf("zone changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ZoneChangeBatch{}, err
	}

	return batch, nil
}

func (h *httpServerAdapter) FetchRecordChanges(ctx context.Context, zoneID models.ZoneID, token models.ChangeToken) (models.ChangeBatch, error) {
	var batch models.ChangeBatch

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RecordChangesRequest{ZoneID: zoneID, Token: token}).
		SetResult(&batch).
		Post("/api/records/changes")
	if err != nil {
		return models.ChangeBatch{}, fmt.Errorf("record changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangeBatch{}, err
	}

	h.logger.Debug().
		Str("zone_id", string(zoneID)).
		Int("upserted", len(batch.Upserted)).
		Int("deleted", len(batch.Deleted)).
		Bool("more_coming", batch.MoreComing).
		Msg("record changes fetched")

	return batch, nil
}

func (h *httpServerAdapter) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error) {
	var out models.ModifyRecordsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/records/modify")
	if err != nil {
		return models.ModifyRecordsResponse{}, fmt.Errorf("modify records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ModifyRecordsResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	var saved models.Zone

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.SaveZoneRequest{Zone: zone}).
		SetResult(&saved).
		Post("/api/zones")
	if err != nil {
		return models.Zone{}, fmt.Errorf("save zone request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Zone{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) DeleteZone(ctx context.Context, zoneID models.ZoneID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("zoneID", string(zoneID)).
		Delete("/api/zones/{zoneID}")
	if err != nil {
		return fmt.Errorf("delete zone request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Accounts(ctx context.Context) ([]models.Account, error) {
	var out models.AccountsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/accounts")
	if err != nil {
		return nil, fmt.Errorf("accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Accounts, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
