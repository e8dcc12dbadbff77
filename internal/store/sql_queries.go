package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-share-cache/models"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	lite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var (
	zoneColumns   = []string{"zone_id", "name", "owner", "scope", "deleted", "seq"}
	recordColumns = []string{
		"record_id", "record_type", "parent_id", "name", "share_id",
		"permission", "change_tag", "deleted", "seq", "modified_at",
	}
)

const nextSeq = "nextval('change_seq')"

func buildZoneChangesQuery(scope models.Scope, since int64) (string, []any, error) {
	q := psql.Select(zoneColumns...).
		From("zones").
		Where(sq.Eq{"scope": scope}).
		Where(sq.Gt{"seq": since})
	if since == 0 {
		// a fresh reader has nothing to forget
		q = q.Where(sq.Eq{"deleted": false})
	}

	return q.OrderBy("seq").ToSql()
}

func buildGetZoneQuery(zoneID models.ZoneID) (string, []any, error) {
	return psql.Select(zoneColumns...).
		From("zones").
		Where(sq.Eq{"zone_id": zoneID, "deleted": false}).
		ToSql()
}

func buildSaveZoneQuery(zone models.Zone) (string, []any, error) {
	return psql.Insert("zones").
		Columns("zone_id", "name", "owner", "scope").
		Values(zone.ID, zone.Name, zone.Owner, zone.Scope).
		Suffix("ON CONFLICT (zone_id) DO UPDATE SET " +
			"name = EXCLUDED.name, owner = EXCLUDED.owner, deleted = FALSE, " +
			"seq = " + nextSeq + ", modified_at = NOW() RETURNING seq").
		ToSql()
}

func buildDeleteZoneQuery(zoneID models.ZoneID) (string, []any, error) {
	return psql.Update("zones").
		Set("deleted", true).
		Set("seq", sq.Expr(nextSeq)).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"zone_id": zoneID, "deleted": false}).
		Suffix("RETURNING zone_id, name, owner, scope").
		ToSql()
}

func buildRecordChangesQuery(zoneID models.ZoneID, since int64, limit int) (string, []any, error) {
	q := psql.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"zone_id": zoneID}).
		Where(sq.Gt{"seq": since})
	if since == 0 {
		q = q.Where(sq.Eq{"deleted": false})
	}

	// one extra row tells whether another page follows
	return q.OrderBy("seq").Limit(uint64(limit) + 1).ToSql()
}

func buildUpsertRecordQuery(zoneID models.ZoneID, r models.Record) (string, []any, error) {
	return psql.Insert("records").
		Columns("zone_id", "record_id", "record_type", "parent_id", "name", "share_id", "permission", "change_tag").
		Values(zoneID, r.ID, r.Type, r.ParentID, r.Name, r.ShareID, permissionText(r.Permission), r.ChangeTag).
		Suffix("ON CONFLICT (zone_id, record_id) DO UPDATE SET " +
			"record_type = EXCLUDED.record_type, parent_id = EXCLUDED.parent_id, " +
			"name = EXCLUDED.name, share_id = EXCLUDED.share_id, permission = EXCLUDED.permission, " +
			"change_tag = EXCLUDED.change_tag, deleted = FALSE, " +
			"seq = " + nextSeq + ", modified_at = NOW() RETURNING modified_at").
		ToSql()
}

func buildDeleteRecordQuery(zoneID models.ZoneID, id models.RecordID) (string, []any, error) {
	return psql.Update("records").
		Set("deleted", true).
		Set("seq", sq.Expr(nextSeq)).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"zone_id": zoneID, "record_id": id, "deleted": false}).
		Suffix("RETURNING record_type").
		ToSql()
}

func buildDeleteChildrenQuery(zoneID models.ZoneID, parentID models.RecordID) (string, []any, error) {
	return psql.Update("records").
		Set("deleted", true).
		Set("seq", sq.Expr(nextSeq)).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"zone_id": zoneID, "parent_id": parentID, "deleted": false}).
		Suffix("RETURNING record_id").
		ToSql()
}

func buildPurgeRecordsQuery(before any) (string, []any, error) {
	return psql.Delete("records").
		Where(sq.Eq{"deleted": true}).
		Where(sq.Lt{"modified_at": before}).
		ToSql()
}

func buildPurgeZonesQuery(before any) (string, []any, error) {
	return psql.Delete("zones").
		Where(sq.Eq{"deleted": true}).
		Where(sq.Lt{"modified_at": before}).
		ToSql()
}

func buildListAccountsQuery() (string, []any, error) {
	return psql.Select("account_id", "display_name", "domain_id").
		From("accounts").
		OrderBy("account_id").
		ToSql()
}

func buildSaveAccountQuery(a models.Account) (string, []any, error) {
	return psql.Insert("accounts").
		Columns("account_id", "display_name", "domain_id").
		Values(a.ID, a.DisplayName, a.DomainID).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET " +
			"display_name = EXCLUDED.display_name, domain_id = EXCLUDED.domain_id").
		ToSql()
}

// client snapshot

func buildLoadCachedRecordsQuery(zoneID models.ZoneID) (string, []any, error) {
	return lite.Select("record_id", "record_type", "parent_id", "name", "share_id", "permission", "change_tag").
		From("cached_records").
		Where(sq.Eq{"zone_id": zoneID}).
		OrderBy("rowid").
		ToSql()
}

func buildUpsertCachedRecordQuery(zoneID models.ZoneID, r models.Record) (string, []any, error) {
	return lite.Insert("cached_records").
		Columns("zone_id", "record_id", "record_type", "parent_id", "name", "share_id", "permission", "change_tag").
		Values(zoneID, r.ID, r.Type, r.ParentID, r.Name, r.ShareID, permissionText(r.Permission), r.ChangeTag).
		Suffix("ON CONFLICT (zone_id, record_id) DO UPDATE SET " +
			"record_type = excluded.record_type, parent_id = excluded.parent_id, " +
			"name = excluded.name, share_id = excluded.share_id, " +
			"permission = excluded.permission, change_tag = excluded.change_tag").
		ToSql()
}

func buildDeleteCachedRecordsQuery(zoneID models.ZoneID, ids []models.RecordID) (string, []any, error) {
	q := lite.Delete("cached_records").Where(sq.Eq{"zone_id": zoneID})
	if ids != nil {
		q = q.Where(sq.Eq{"record_id": ids})
	}
	return q.ToSql()
}

func buildLoadCachedZonesQuery(scope models.Scope) (string, []any, error) {
	return lite.Select("zone_id", "name", "owner").
		From("cached_zones").
		Where(sq.Eq{"scope": scope}).
		OrderBy("rowid").
		ToSql()
}

func buildUpsertCachedZoneQuery(scope models.Scope, z models.Zone) (string, []any, error) {
	return lite.Insert("cached_zones").
		Columns("zone_id", "scope", "name", "owner").
		Values(z.ID, scope, z.Name, z.Owner).
		Suffix("ON CONFLICT (zone_id) DO UPDATE SET " +
			"scope = excluded.scope, name = excluded.name, owner = excluded.owner").
		ToSql()
}

func buildDeleteCachedZonesQuery(ids []models.ZoneID) (string, []any, error) {
	return lite.Delete("cached_zones").Where(sq.Eq{"zone_id": ids}).ToSql()
}

func buildLoadTokenQuery(key string) (string, []any, error) {
	return lite.Select("token").From("change_tokens").Where(sq.Eq{"scope_key": key}).ToSql()
}

func buildSaveTokenQuery(key string, token models.ChangeToken) (string, []any, error) {
	return lite.Insert("change_tokens").
		Columns("scope_key", "token").
		Values(key, []byte(token)).
		Suffix("ON CONFLICT (scope_key) DO UPDATE SET token = excluded.token").
		ToSql()
}

func buildDeleteTokenQuery(key string) (string, []any, error) {
	return lite.Delete("change_tokens").Where(sq.Eq{"scope_key": key}).ToSql()
}

// permissionText stores PermissionUnknown as "" so an unset column reads
// back as unknown.
func permissionText(p models.Permission) string {
	if p == models.PermissionUnknown {
		return ""
	}
	return p.String()
}
