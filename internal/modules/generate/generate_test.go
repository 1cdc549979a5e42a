package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/modules/rights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	reply string
	err   error
	calls int
}

func (f *fakeCaller) Complete(_ context.Context, _ CompletionRequest) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newGenerator(caller Caller) *Generator {
	return NewGenerator(caller, rights.NewService(), nil)
}

func TestSummaryUsesProviderReply(t *testing.T) {
	gen := newGenerator(&fakeCaller{reply: "A calm, factual account."})
	got := gen.Summary(context.Background(), "traffic_stop", 125, "", "CA", "en")
	assert.Equal(t, "A calm, factual account.", got)
}

func TestSummaryFallbackOnError(t *testing.T) {
	gen := newGenerator(&fakeCaller{err: errors.New("connection refused")})
	first := gen.Summary(context.Background(), "traffic_stop", 125, "", "", "en")
	second := gen.Summary(context.Background(), "traffic_stop", 125, "", "", "en")

	assert.Equal(t, "traffic stop interaction recorded for 2 minutes and 5 seconds", first)
	assert.Equal(t, first, second, "fallback must be deterministic")
}

func TestSummaryFallbackOnEmptyReply(t *testing.T) {
	gen := newGenerator(&fakeCaller{reply: "   "})
	got := gen.Summary(context.Background(), "arrest", 30, "", "", "en")
	assert.Equal(t, "arrest interaction recorded for 0 minutes and 30 seconds", got)
}

func TestSummaryFallbackWithoutProvider(t *testing.T) {
	gen := newGenerator(nil)
	assert.False(t, gen.Available())
	got := gen.Summary(context.Background(), "protest", 60, "", "", "es")
	assert.Equal(t, "Interacción de protesta grabada durante 1 minutos y 0 segundos", got)
}

func TestShareableFallbackLanguagesDiffer(t *testing.T) {
	gen := newGenerator(&fakeCaller{err: errors.New("timeout")})
	en := gen.ShareableCard(context.Background(), "traffic_stop", "", nil, "en", "")
	es := gen.ShareableCard(context.Background(), "traffic_stop", "", nil, "es", "")

	assert.NotEqual(t, en, es)
	assert.Less(t, len(en), 280)
	assert.Less(t, len(es), 280)
	assert.Contains(t, en, "#KnowYourRights")
	assert.Contains(t, es, "#ConoceTusDerechos")
}

func TestShareableFallbackIgnoresKeyRights(t *testing.T) {
	gen := newGenerator(&fakeCaller{err: errors.New("boom")})
	a := gen.ShareableCard(context.Background(), "arrest", "summary A", []string{"right 1"}, "en", "CA")
	b := gen.ShareableCard(context.Background(), "arrest", "summary B", []string{"right 2", "right 3"}, "en", "NY")
	assert.Equal(t, a, b)
}

func TestShareableProviderReplyTruncated(t *testing.T) {
	long := strings.Repeat("derechos y más ", 40) // well past the cap
	gen := newGenerator(&fakeCaller{reply: long})

	got := gen.ShareableCard(context.Background(), "traffic_stop", "", nil, "es", "")
	assert.LessOrEqual(t, len([]rune(got)), 280)
	assert.True(t, strings.HasPrefix(long, got), "truncation must not rewrite the reply")
}

func TestShareableShortReplyUntouched(t *testing.T) {
	gen := newGenerator(&fakeCaller{reply: "Know your rights. #KnowYourRights"})
	got := gen.ShareableCard(context.Background(), "traffic_stop", "", nil, "en", "")
	assert.Equal(t, "Know your rights. #KnowYourRights", got)
}

func TestCardParsesJSONReply(t *testing.T) {
	reply := "```json\n{\"title\":\"Traffic Stop Rights\",\"summary\":\"Stay calm.\",\"keyPoints\":[\"Silence\",\"No consent\"],\"shareableText\":\"Know your rights.\"}\n```"
	gen := newGenerator(&fakeCaller{reply: reply})

	card := gen.Card(context.Background(), "traffic_stop", "CA", "")
	assert.Equal(t, "Traffic Stop Rights", card.Title)
	assert.Equal(t, "Stay calm.", card.Summary)
	assert.Equal(t, []string{"Silence", "No consent"}, card.KeyPoints)
	assert.Equal(t, "CA", card.State)
}

func TestCardFallbackOnMalformedJSON(t *testing.T) {
	gen := newGenerator(&fakeCaller{reply: "I'm sorry, I can't produce JSON."})
	card := gen.Card(context.Background(), "home_search", "General", "")

	assert.Equal(t, "Home Search Rights", card.Title)
	assert.Len(t, card.KeyPoints, 4)
	assert.Contains(t, card.ShareableText, "#KnowYourRights")
}

func TestCustomCardParsesSections(t *testing.T) {
	reply := strings.Join([]string{
		"Traffic Stop Card",
		"",
		"Do's:",
		"- Keep hands visible",
		"- Stay calm",
		"Don'ts:",
		"- Don't argue",
		"Key Rights:",
		"1. Right to remain silent",
		"2. Right to record",
		"Phrases:",
		"- Am I free to leave?",
		"Responses:",
		"- I understand, officer",
	}, "\n")
	gen := newGenerator(&fakeCaller{reply: reply})

	card, err := gen.CustomCard(context.Background(), "traffic_stop", "CA", "en")
	require.NoError(t, err)

	assert.False(t, card.FromCatalog)
	assert.Equal(t, []string{"Keep hands visible", "Stay calm"}, card.Dos.Items)
	assert.False(t, card.Dos.Defaulted)
	assert.Equal(t, []string{"Don't argue"}, card.Donts.Items)
	assert.Equal(t, []string{"Right to remain silent", "Right to record"}, card.KeyRights.Items)
	assert.Equal(t, []string{"Am I free to leave?"}, card.Phrases.Items)
	assert.Equal(t, []string{"I understand, officer"}, card.Responses.Items)
}

func TestCustomCardDefaultsEmptySections(t *testing.T) {
	reply := "Do's:\n- Keep hands visible\n\nUnrelated chatter that is not a section."
	gen := newGenerator(&fakeCaller{reply: reply})

	card, err := gen.CustomCard(context.Background(), "questioning", "General", "en")
	require.NoError(t, err)

	assert.False(t, card.Dos.Defaulted)
	assert.True(t, card.Donts.Defaulted)
	assert.True(t, card.KeyRights.Defaulted)
	assert.NotEmpty(t, card.Donts.Items)
	assert.NotEmpty(t, card.KeyRights.Items)
}

func TestCustomCardFallsBackToCatalog(t *testing.T) {
	gen := newGenerator(&fakeCaller{err: errors.New("unreachable")})
	card, err := gen.CustomCard(context.Background(), "arrest", "IL", "en")
	require.NoError(t, err)

	assert.True(t, card.FromCatalog)
	assert.Equal(t, "Arrest Rights", card.Title)
	assert.NotEmpty(t, card.Dos.Items)
	assert.NotEmpty(t, card.KeyRights.Items)
}

func TestCustomCardUnknownType(t *testing.T) {
	gen := newGenerator(nil)
	_, err := gen.CustomCard(context.Background(), "parade", "CA", "en")
	assert.ErrorIs(t, err, rights.ErrUnknownInteractionType)
}

func newTestRouter(caller Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(newGenerator(caller)).RegisterRoutes(api)
	return r
}

func TestGenerateSummaryEndpoint(t *testing.T) {
	r := newTestRouter(&fakeCaller{err: errors.New("down")})

	body := `{"interactionType":"traffic_stop","durationSeconds":65,"location":"Main St"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "traffic stop interaction recorded for 1 minutes and 5 seconds", resp.Summary)
}

func TestGenerateSummaryEndpointValidation(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-summary", strings.NewReader(`{"durationSeconds":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/generate-summary", strings.NewReader(`{"interactionType":"abduction"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateCardEndpointFallback(t *testing.T) {
	r := newTestRouter(nil)

	body := `{"interactionType":"protest","jurisdiction":"NY","context":"street march"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-card", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var card GeneratedCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Protest Rights", card.Title)
	assert.Equal(t, "NY", card.State)
	assert.NotEmpty(t, card.KeyPoints)
}
