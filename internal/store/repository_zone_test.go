package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

var zoneRowColumns = []string{"zone_id", "name", "owner", "scope", "deleted", "seq"}

func TestZoneChanges(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT zone_id, name, owner, scope, deleted, seq FROM zones WHERE scope = \$1 AND seq > \$2 ORDER BY seq`).
		WithArgs("shared", int64(10)).
		WillReturnRows(sqlmock.NewRows(zoneRowColumns).
			AddRow("z1", "Family", "ann", "shared", false, int64(11)).
			AddRow("z2", "Work", "bob", "shared", true, int64(14)))

	changes, err := repo.ZoneChanges(testContext(), models.ScopeShared, 10)
	require.NoError(t, err)

	assert.Equal(t, []models.Zone{{ID: "z1", Name: "Family", Owner: "ann", Scope: models.ScopeShared}}, changes.Changed)
	assert.Equal(t, []models.ZoneID{"z2"}, changes.Deleted)
	assert.Equal(t, int64(14), changes.Seq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneChanges_NoRowsKeepsSince(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`FROM zones`).WillReturnRows(sqlmock.NewRows(zoneRowColumns))

	changes, err := repo.ZoneChanges(testContext(), models.ScopePrivate, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), changes.Seq)
	assert.Empty(t, changes.Changed)
}

func TestZoneChanges_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`FROM zones`).WillReturnError(errors.New("boom"))

	_, err := repo.ZoneChanges(testContext(), models.ScopePrivate, 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSaveZone(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`INSERT INTO zones \(zone_id,name,owner,scope\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT`).
		WithArgs("z1", "Notes", "ann", "private").
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(3)))

	seq, err := repo.SaveZone(testContext(), models.Zone{ID: "z1", Name: "Notes", Owner: "ann", Scope: models.ScopePrivate})
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteZone(t *testing.T) {
	t.Run("tombstones live zone", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(`UPDATE zones SET deleted = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"zone_id", "name", "owner", "scope"}).
				AddRow("z1", "Notes", "ann", "private"))

		zone, err := repo.DeleteZone(testContext(), "z1")
		require.NoError(t, err)
		assert.Equal(t, models.ScopePrivate, zone.Scope)
	})

	t.Run("unknown zone", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(`UPDATE zones`).
			WillReturnRows(sqlmock.NewRows([]string{"zone_id", "name", "owner", "scope"}))

		_, err := repo.DeleteZone(testContext(), "nope")
		assert.ErrorIs(t, err, models.ErrZoneNotFound)
	})
}

func TestGetZone_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewZoneRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`FROM zones WHERE deleted = \$1 AND zone_id = \$2`).
		WithArgs(false, "z1").
		WillReturnRows(sqlmock.NewRows(zoneRowColumns))

	_, err := repo.GetZone(testContext(), "z1")
	assert.ErrorIs(t, err, models.ErrZoneNotFound)
}
