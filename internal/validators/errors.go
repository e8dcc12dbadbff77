package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyZoneID            = errors.New("zone id is required")
	ErrEmptyZoneName          = errors.New("zone name is required")
	ErrInvalidScope           = errors.New("invalid database scope")
	ErrInvalidLimit           = errors.New("invalid page limit")
	ErrEmptyRecordID          = errors.New("record id is required")
	ErrInvalidRecordType      = errors.New("invalid record type")
	ErrNoteWithoutParent      = errors.New("note must reference a topic")
	ErrShareWithoutPermission = errors.New("share must carry a permission")
	ErrZoneMismatch           = errors.New("record belongs to another zone")
	ErrDuplicateRecord        = errors.New("record listed twice")
	ErrNothingToModify        = errors.New("save and delete lists cannot both be empty")
	ErrEmptyAccountID         = errors.New("account id is required")
	ErrEmptyDisplayName       = errors.New("display name is required")
)
