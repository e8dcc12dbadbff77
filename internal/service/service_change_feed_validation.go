package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-share-cache/internal/validators"
	"github.com/MKhiriev/go-share-cache/models"
)

// ChangeFeedValidationService validates requests before they reach the
// wrapped ChangeFeedService.
type ChangeFeedValidationService struct {
	inner     ChangeFeedService
	validator validators.Validator
}

func NewChangeFeedValidationService() ChangeFeedServiceWrapper {
	return &ChangeFeedValidationService{
		validator: validators.NewChangeFeedValidator(),
	}
}

func (v *ChangeFeedValidationService) Wrap(inner ChangeFeedService) ChangeFeedService {
	return &ChangeFeedValidationService{inner: inner, validator: v.validator}
}

func (v *ChangeFeedValidationService) ZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangeBatch, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.ZoneChangeBatch{}, err
	}
	return v.inner.ZoneChanges(ctx, req)
}

func (v *ChangeFeedValidationService) SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	if err := v.validate(ctx, zone); err != nil {
		return models.Zone{}, err
	}
	return v.inner.SaveZone(ctx, zone)
}

func (v *ChangeFeedValidationService) DeleteZone(ctx context.Context, zoneID models.ZoneID) error {
	if zoneID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyZoneID)
	}
	return v.inner.DeleteZone(ctx, zoneID)
}

func (v *ChangeFeedValidationService) RecordChanges(ctx context.Context, req models.RecordChangesRequest) (models.ChangeBatch, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.ChangeBatch{}, err
	}
	return v.inner.RecordChanges(ctx, req)
}

func (v *ChangeFeedValidationService) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.ModifyRecordsResponse{}, err
	}
	return v.inner.ModifyRecords(ctx, req)
}

func (v *ChangeFeedValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
