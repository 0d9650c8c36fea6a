package versioned_test

import (
	"path/filepath"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Text              string `gorm:"not null"`
	versioned.Columns `gorm:"embedded"`
}

func (noteDTO) TableName() string {
	return "notes"
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "versioned.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&noteDTO{}))
	return db
}

func insert(t *testing.T, db *gorm.DB, now time.Time) (noteDTO, kernel.Audit) {
	t.Helper()
	audit, err := kernel.NewAudit(now, 3)
	require.NoError(t, err)

	dto := noteDTO{Text: "first", Columns: versioned.FromAudit(audit)}
	require.NoError(t, db.Create(&dto).Error)

	restored, err := dto.Columns.ToAudit()
	require.NoError(t, err)
	return dto, restored
}

func TestColumns_RoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	audit, err := kernel.NewAudit(now, 3)
	require.NoError(t, err)
	audit = audit.Touch(now.Add(time.Minute), 4).SoftDelete(now.Add(2*time.Minute), 5)

	restored, err := versioned.FromAudit(audit).ToAudit()
	require.NoError(t, err)

	assert.True(t, restored.CreatedAt().Equal(now))
	assert.Equal(t, kernel.ID(5), restored.UpdatedBy())
	assert.True(t, restored.IsDeleted())
	assert.Equal(t, audit.Version(), restored.Version())
	assert.Equal(t, audit.Version(), restored.PersistedVersion())
}

func TestUpdate_BumpsVersionAndKeepsCreationColumns(t *testing.T) {
	db := openDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dto, audit := insert(t, db, now)

	touched := audit.Touch(now.Add(time.Hour), 9)
	changed := noteDTO{ID: dto.ID, Text: "second", Columns: versioned.FromAudit(touched)}
	changed.CreatedBy = 99

	require.NoError(t, versioned.Update(t.Context(), db, &changed, "note", kernel.ID(dto.ID), audit.PersistedVersion()))

	var stored noteDTO
	require.NoError(t, db.First(&stored, dto.ID).Error)
	assert.Equal(t, "second", stored.Text)
	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, int64(9), stored.UpdatedBy)
	assert.Equal(t, int64(3), stored.CreatedBy)
}

func TestUpdate_StaleVersionConflicts(t *testing.T) {
	db := openDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dto, audit := insert(t, db, now)

	first := noteDTO{ID: dto.ID, Text: "a", Columns: versioned.FromAudit(audit.Touch(now, 1))}
	require.NoError(t, versioned.Update(t.Context(), db, &first, "note", kernel.ID(dto.ID), audit.PersistedVersion()))

	second := noteDTO{ID: dto.ID, Text: "b", Columns: versioned.FromAudit(audit.Touch(now, 2))}
	err := versioned.Update(t.Context(), db, &second, "note", kernel.ID(dto.ID), audit.PersistedVersion())

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	db := openDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	audit, err := kernel.NewAudit(now, 3)
	require.NoError(t, err)

	ghost := noteDTO{ID: 42, Text: "ghost", Columns: versioned.FromAudit(audit)}
	err = versioned.Update(t.Context(), db, &ghost, "note", 42, audit.PersistedVersion())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNotDeleted(t *testing.T) {
	db := openDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dto, audit := insert(t, db, now)
	insert(t, db, now)

	deleted := noteDTO{ID: dto.ID, Text: dto.Text, Columns: versioned.FromAudit(audit.SoftDelete(now, 3))}
	require.NoError(t, versioned.Update(t.Context(), db, &deleted, "note", kernel.ID(dto.ID), audit.PersistedVersion()))

	var live []noteDTO
	require.NoError(t, db.Scopes(versioned.NotDeleted).Find(&live).Error)
	require.Len(t, live, 1)
	assert.NotEqual(t, dto.ID, live[0].ID)
}
