package libretranslate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav99t/polytask/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestTranslateOne(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello team", req["q"])
		assert.Equal(t, "en", req["source"])
		assert.Equal(t, "es", req["target"])
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": "Hola equipo"})
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateOne(t.Context(), "Hello team", domain.LocaleEN, domain.LocaleES)
	require.NoError(t, err)
	assert.Equal(t, "Hola equipo", got)
}

func TestTranslateOne_SameLocaleSkipsNetwork(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for source == target")
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateOne(t.Context(), "Hello", domain.LocaleEN, domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestTranslateOne_ServerErrorReturnsInput(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over quota", http.StatusTooManyRequests)
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateOne(t.Context(), "Hello team", domain.LocaleEN, domain.LocaleFR)
	require.Error(t, err)
	assert.Equal(t, "Hello team", got, "callers always get displayable text")
}

func TestTranslateBatch_PreservesOrderAndBlanks(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Q []string `json:"q"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"Fix login", "Crashes on submit"}, req.Q, "blanks stay local")
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"translatedText": {"Corriger la connexion", "Plante à l'envoi"},
		})
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateBatch(t.Context(), []string{"Fix login", "", "Crashes on submit"}, domain.LocaleEN, domain.LocaleFR)
	require.NoError(t, err)
	assert.Equal(t, []string{"Corriger la connexion", "", "Plante à l'envoi"}, got)
}

func TestTranslateBatch_SingleStringResponse(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": "Hallo"})
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateBatch(t.Context(), []string{"Hello"}, domain.LocaleEN, domain.LocaleDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hallo"}, got)
}

func TestTranslateBatch_LengthMismatchFallsBack(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"translatedText": {"только один"}})
	})

	c := New(srv.URL, "", 0)
	got, err := c.TranslateBatch(t.Context(), []string{"one", "two"}, domain.LocaleEN, domain.LocaleES)
	require.Error(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestTranslateBatch_UnreachableServerReturnsInputs(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1", "", 0)
	got, err := c.TranslateBatch(t.Context(), []string{"a", "b"}, domain.LocaleEN, domain.LocaleZH)
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}
