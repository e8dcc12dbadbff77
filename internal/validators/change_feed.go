package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-share-cache/models"
)

const (
	FieldZoneID     = "zone_id"
	FieldScope      = "scope"
	FieldLimit      = "limit"
	FieldName       = "name"
	FieldRecordID   = "id"
	FieldType       = "type"
	FieldParentID   = "parent_id"
	FieldPermission = "permission"
)

// MaxPageSize caps RecordChangesRequest.Limit.
const MaxPageSize = 1000

var recordFields = []string{FieldRecordID, FieldType, FieldParentID, FieldPermission}

type ChangeFeedValidator struct{}

func NewChangeFeedValidator() Validator {
	return &ChangeFeedValidator{}
}

func (v *ChangeFeedValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ZoneChangesRequest:
		return validateScope(value.Scope)
	case *models.ZoneChangesRequest:
		return validateScope(value.Scope)

	case models.RecordChangesRequest:
		return v.validateRecordChanges(value)
	case *models.RecordChangesRequest:
		return v.validateRecordChanges(*value)

	case models.ModifyRecordsRequest:
		return v.validateModify(ctx, value)
	case *models.ModifyRecordsRequest:
		return v.validateModify(ctx, *value)

	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)

	case models.Zone:
		return v.validateZone(value)
	case models.SaveZoneRequest:
		return v.validateZone(value.Zone)

	case models.Account:
		return v.validateAccount(value)

	default:
		return ErrUnsupportedType
	}
}

func validateScope(scope models.Scope) error {
	if scope != models.ScopePrivate && scope != models.ScopeShared {
		return fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}
	return nil
}

func (v *ChangeFeedValidator) validateRecordChanges(req models.RecordChangesRequest) error {
	if req.ZoneID == "" {
		return ErrEmptyZoneID
	}
	if req.Limit < 0 || req.Limit > MaxPageSize {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, req.Limit)
	}
	return nil
}

func (v *ChangeFeedValidator) validateModify(ctx context.Context, req models.ModifyRecordsRequest) error {
	if req.ZoneID == "" {
		return ErrEmptyZoneID
	}
	if len(req.Save) == 0 && len(req.Delete) == 0 {
		return ErrNothingToModify
	}

	seen := make(map[models.RecordID]struct{}, len(req.Save))
	for i, record := range req.Save {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v.validateRecord(record); err != nil {
			return fmt.Errorf("save[%d]: %w", i, err)
		}
		if record.ZoneID != "" && record.ZoneID != req.ZoneID {
			return fmt.Errorf("save[%d]: %w", i, ErrZoneMismatch)
		}
		if _, dup := seen[record.ID]; dup {
			return fmt.Errorf("save[%d]: %w: %s", i, ErrDuplicateRecord, record.ID)
		}
		seen[record.ID] = struct{}{}
	}

	for i, id := range req.Delete {
		if id == "" {
			return fmt.Errorf("delete[%d]: %w", i, ErrEmptyRecordID)
		}
	}

	return nil
}

// validateRecord checks the named fields of r, or all of them when fields is
// empty.
func (v *ChangeFeedValidator) validateRecord(r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = recordFields
	}

	for _, field := range fields {
		switch field {
		case FieldRecordID:
			if r.ID == "" {
				return ErrEmptyRecordID
			}
		case FieldType:
			if !r.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRecordType, r.Type)
			}
		case FieldParentID:
			if r.Type == models.RecordTypeNote && r.ParentID == "" {
				return ErrNoteWithoutParent
			}
		case FieldPermission:
			if r.Type == models.RecordTypeShare && r.Permission == models.PermissionUnknown {
				return ErrShareWithoutPermission
			}
		default:
			if !slices.Contains(recordFields, field) {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		}
	}

	return nil
}

func (v *ChangeFeedValidator) validateZone(z models.Zone) error {
	if z.ID == "" {
		return ErrEmptyZoneID
	}
	if z.Name == "" {
		return ErrEmptyZoneName
	}
	return validateScope(z.Scope)
}

func (v *ChangeFeedValidator) validateAccount(a models.Account) error {
	if a.ID == "" {
		return ErrEmptyAccountID
	}
	if a.DisplayName == "" {
		return ErrEmptyDisplayName
	}
	return nil
}
