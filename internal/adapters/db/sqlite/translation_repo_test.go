package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav99t/polytask/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTranslationRepo_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := NewTranslationRepo(testDB(t))
	ctx := t.Context()

	tr := &domain.Translation{
		EntityKind: domain.KindComment,
		EntityID:   1,
		Locale:     domain.LocaleES,
		Fields:     domain.Fields{domain.FieldContent: "Hola equipo"},
	}
	require.NoError(t, repo.Upsert(ctx, tr))
	require.NoError(t, repo.Upsert(ctx, tr))

	var count int
	err := repo.DB.QueryRow(`SELECT COUNT(*) FROM translations WHERE entity_kind='comment' AND entity_id=1`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "repeated upsert for one key keeps one row")

	got, err := repo.Get(ctx, domain.KindComment, 1, domain.LocaleES)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hola equipo", got.Fields[domain.FieldContent])
}

func TestTranslationRepo_UpsertReplacesFields(t *testing.T) {
	t.Parallel()

	repo := NewTranslationRepo(testDB(t))
	ctx := t.Context()

	first := &domain.Translation{
		EntityKind: domain.KindTask,
		EntityID:   5,
		Locale:     domain.LocaleFR,
		Fields:     domain.Fields{domain.FieldTitle: "Ancien titre", domain.FieldDescription: "desc"},
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &domain.Translation{
		EntityKind: domain.KindTask,
		EntityID:   5,
		Locale:     domain.LocaleFR,
		Fields:     domain.Fields{domain.FieldTitle: "Nouveau titre"},
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, domain.KindTask, 5, domain.LocaleFR)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Nouveau titre", got.Fields[domain.FieldTitle])
	_, hasDesc := got.Fields[domain.FieldDescription]
	assert.False(t, hasDesc, "absent fields are nulled on replace")
}

func TestTranslationRepo_GetMissingReturnsNilNil(t *testing.T) {
	t.Parallel()

	repo := NewTranslationRepo(testDB(t))

	got, err := repo.Get(t.Context(), domain.KindComment, 999, domain.LocaleJA)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTranslationRepo_ListByEntities(t *testing.T) {
	t.Parallel()

	repo := NewTranslationRepo(testDB(t))
	ctx := t.Context()

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, repo.Upsert(ctx, &domain.Translation{
			EntityKind: domain.KindTask,
			EntityID:   id,
			Locale:     domain.LocaleDE,
			Fields:     domain.Fields{domain.FieldTitle: "Titel"},
		}))
	}
	// Same id in another locale must not leak into the result.
	require.NoError(t, repo.Upsert(ctx, &domain.Translation{
		EntityKind: domain.KindTask,
		EntityID:   2,
		Locale:     domain.LocaleJA,
		Fields:     domain.Fields{domain.FieldTitle: "題名"},
	}))

	got, err := repo.ListByEntities(ctx, domain.KindTask, []int64{1, 3, 42}, domain.LocaleDE)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.Equal(t, domain.LocaleDE, tr.Locale)
	}

	empty, err := repo.ListByEntities(ctx, domain.KindTask, nil, domain.LocaleDE)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTranslationRepo_DeleteByEntity(t *testing.T) {
	t.Parallel()

	repo := NewTranslationRepo(testDB(t))
	ctx := t.Context()

	for _, loc := range []domain.Locale{domain.LocaleEN, domain.LocaleES, domain.LocaleHI} {
		require.NoError(t, repo.Upsert(ctx, &domain.Translation{
			EntityKind: domain.KindComment,
			EntityID:   8,
			Locale:     loc,
			Fields:     domain.Fields{domain.FieldContent: "x"},
		}))
	}

	require.NoError(t, repo.DeleteByEntity(ctx, domain.KindComment, 8))

	got, err := repo.Get(ctx, domain.KindComment, 8, domain.LocaleES)
	require.NoError(t, err)
	assert.Nil(t, got)
}
