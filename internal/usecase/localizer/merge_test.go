package localizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav99t/polytask/internal/domain"
)

func TestComments_MergeSubstitutesAndKeepsOriginal(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := New(Deps{Translator: &fakeTranslator{}, Translations: store})
	svc.Localize(t.Context(), domain.KindComment, 1, domain.Fields{domain.FieldContent: "Hello team"}, domain.LocaleEN)

	comments := []*domain.Comment{{ID: 1, TaskID: 5, Content: "Hello team", SourceLang: domain.LocaleEN}}
	out, err := svc.Comments(t.Context(), comments, domain.LocaleES)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "[es] Hello team", out[0].Content)
	assert.Equal(t, "Hello team", out[0].OriginalContent)
}

func TestComments_FallbackWhenNoTranslationRow(t *testing.T) {
	t.Parallel()

	svc := New(Deps{Translator: &fakeTranslator{}, Translations: newMemStore()})

	comments := []*domain.Comment{
		{ID: 1, Content: "no rows yet"},
		{ID: 2, Content: "me neither"},
	}
	for _, locale := range domain.Locales {
		out, err := svc.Comments(t.Context(), comments, locale)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "no rows yet", out[0].Content, "locale %s", locale)
		assert.Equal(t, "me neither", out[1].Content, "locale %s", locale)
	}
}

func TestTasks_BatchMergeMixedCoverage(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := New(Deps{Translator: &fakeTranslator{}, Translations: store})

	// Task 1 has translations; task 2 has none yet.
	svc.Localize(t.Context(), domain.KindTask, 1, domain.Fields{
		domain.FieldTitle:       "Ship release",
		domain.FieldStatusLabel: "In progress",
	}, domain.LocaleEN)

	tasks := []*domain.Task{
		{ID: 1, Title: "Ship release", StatusLabel: "In progress"},
		{ID: 2, Title: "Write docs", StatusLabel: "Open"},
	}
	out, err := svc.Tasks(t.Context(), tasks, domain.LocaleDE)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "[de] Ship release", out[0].Title)
	assert.Equal(t, "[de] In progress", out[0].StatusLabel)
	assert.Equal(t, "Ship release", out[0].OriginalTitle)

	assert.Equal(t, "Write docs", out[1].Title)
	assert.Equal(t, "Open", out[1].StatusLabel)
	assert.Equal(t, "Write docs", out[1].OriginalTitle)
}

func TestMergeFields_EmptyTranslatedFieldKeepsOriginal(t *testing.T) {
	t.Parallel()

	orig := domain.Fields{domain.FieldTitle: "Title", domain.FieldDescription: "Desc"}
	tr := &domain.Translation{Fields: domain.Fields{domain.FieldTitle: "", domain.FieldDescription: "Beschreibung"}}

	merged := mergeFields(orig, tr)
	assert.Equal(t, "Title", merged[domain.FieldTitle])
	assert.Equal(t, "Beschreibung", merged[domain.FieldDescription])
}
