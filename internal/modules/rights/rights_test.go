package rights

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCardNonEmptyForAllTypesAndLanguages(t *testing.T) {
	svc := NewService()
	for _, it := range InteractionTypes {
		for _, lang := range Languages {
			card, err := svc.BaseCard(it, lang)
			require.NoError(t, err, "%s/%s", it, lang)
			assert.NotEmpty(t, card.Title, "%s/%s", it, lang)
			assert.NotEmpty(t, card.Content.Dos, "%s/%s", it, lang)
			assert.NotEmpty(t, card.Content.Donts, "%s/%s", it, lang)
			assert.NotEmpty(t, card.Content.KeyRights, "%s/%s", it, lang)
		}
	}
}

func TestBaseCardUnknownType(t *testing.T) {
	svc := NewService()
	_, err := svc.BaseCard("landing_party", "en")
	assert.ErrorIs(t, err, ErrUnknownInteractionType)
}

func TestResolveWithoutVariationEqualsBase(t *testing.T) {
	svc := NewService()
	for _, jurisdiction := range []string{GeneralJurisdiction, "VT", "HI"} {
		base, err := svc.BaseCard(TypeHomeSearch, "en")
		require.NoError(t, err)
		resolved, err := svc.Resolve(TypeHomeSearch, jurisdiction, "en", "")
		require.NoError(t, err)

		assert.Equal(t, base.Content, resolved.Content, "jurisdiction %s", jurisdiction)
		assert.Equal(t, base.Script, resolved.Script, "jurisdiction %s", jurisdiction)
	}
}

func TestResolveAppendsVariationAfterBase(t *testing.T) {
	svc := NewService()
	base, err := svc.BaseCard(TypeTrafficStop, "en")
	require.NoError(t, err)
	v, ok := svc.Variation("CA", TypeTrafficStop)
	require.True(t, ok)

	resolved, err := svc.Resolve(TypeTrafficStop, "CA", "en", "")
	require.NoError(t, err)

	require.Len(t, resolved.Content.KeyRights, len(base.Content.KeyRights)+len(v.AdditionalRights))
	assert.Equal(t, base.Content.KeyRights, resolved.Content.KeyRights[:len(base.Content.KeyRights)])
	assert.Equal(t, v.AdditionalRights, resolved.Content.KeyRights[len(base.Content.KeyRights):])
	assert.Equal(t, base.Content.Dos, resolved.Content.Dos[:len(base.Content.Dos)])
	assert.Equal(t, v.AdditionalDos, resolved.Content.Dos[len(base.Content.Dos):])

	// Donts are untouched by variations.
	assert.Equal(t, base.Content.Donts, resolved.Content.Donts)
}

func TestResolveDoesNotMutateCatalog(t *testing.T) {
	svc := NewService()
	before, err := svc.BaseCard(TypeTrafficStop, "en")
	require.NoError(t, err)

	_, err = svc.Resolve(TypeTrafficStop, "CA", "en", "")
	require.NoError(t, err)

	after, err := svc.BaseCard(TypeTrafficStop, "en")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestResolveCardID(t *testing.T) {
	svc := NewService()
	card, err := svc.Resolve(TypeQuestioning, "NY", "es", "")
	require.NoError(t, err)
	assert.Equal(t, "questioning-NY-es", card.CardID)
	assert.Equal(t, "NY", card.State)
	assert.Equal(t, "es", card.Language)
}

func TestResolveUnknownTypeReturnsNoPartialCard(t *testing.T) {
	svc := NewService()
	card, err := svc.Resolve("invalid", "CA", "en", "")
	assert.ErrorIs(t, err, ErrUnknownInteractionType)
	assert.Equal(t, Card{}, card)
}

func TestSpanishFallbackForUntranslatedTypes(t *testing.T) {
	svc := NewService()
	es, err := svc.BaseCard(TypeArrest, "es")
	require.NoError(t, err)
	en, err := svc.BaseCard(TypeArrest, "en")
	require.NoError(t, err)

	assert.Equal(t, "es", es.Language)
	assert.Equal(t, en.Content, es.Content)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService()).RegisterRoutes(api)
	return r
}

func TestGetRightsEndpoint(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rights?state=CA&interactionType=traffic_stop&language=en", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body cardEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "traffic_stop-CA-en", body.Card.CardID)
	assert.NotEmpty(t, body.Card.Content.KeyRights)
}

func TestGetRightsEndpointDefaults(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rights", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body cardEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "traffic_stop-General-en", body.Card.CardID)
}

func TestGetRightsEndpointInvalidType(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rights?interactionType=abduction", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid interaction type")
}

func TestPostRightsEndpointCustomSuffix(t *testing.T) {
	r := newTestRouter()

	payload := `{"interactionType":"protest","state":"CA","context":"march downtown"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rights", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body cardEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "protest-CA-custom", body.Card.CardID)
	assert.Equal(t, "march downtown", body.Card.Context)
}

func TestPostRightsEndpointValidation(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rights", strings.NewReader(`{"state":"CA"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
