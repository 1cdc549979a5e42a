// Package generate obtains summaries and shareable rights cards from an
// external chat-completion provider. Every operation is a single attempt
// with a deterministic local fallback; failures never reach the caller as
// errors.
package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rightscard/core/internal/modules/rights"
	"go.uber.org/zap"
)

// GeneratedCard is the structured result of a card-generation call.
type GeneratedCard struct {
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	KeyPoints       []string  `json:"keyPoints"`
	ShareableText   string    `json:"shareableText"`
	InteractionType string    `json:"interactionType,omitempty"`
	State           string    `json:"state,omitempty"`
	Created         time.Time `json:"created"`
}

type Generator struct {
	caller Caller // nil when no provider is configured
	rights *rights.Service
	log    *zap.Logger
	now    func() time.Time
}

func NewGenerator(caller Caller, rightsSvc *rights.Service, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		caller: caller,
		rights: rightsSvc,
		log:    log,
		now:    time.Now,
	}
}

// Available reports whether an external provider is configured.
func (g *Generator) Available() bool { return g.caller != nil }

// Summary produces a documentation summary of a recorded interaction.
// Any provider fault yields a fixed template built purely from the inputs.
func (g *Generator) Summary(ctx context.Context, interactionType string, durationSeconds int, location, jurisdiction, language string) string {
	language = normalizeLanguage(language)
	fallback := g.summaryFallback(interactionType, durationSeconds, language)
	if g.caller == nil {
		return fallback
	}

	text, err := g.caller.Complete(ctx, CompletionRequest{
		System:      summarySystemPrompt,
		Prompt:      buildSummaryPrompt(interactionType, durationSeconds, location, jurisdiction, language),
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		g.log.Debug("summary generation fell back", zap.Error(err))
		return fallback
	}
	return strings.TrimSpace(text)
}

// ShareableCard produces short social-sharing text. The fallback ignores the
// passed keyRights so identical inputs always yield the identical string.
func (g *Generator) ShareableCard(ctx context.Context, interactionType, summary string, keyRights []string, language, jurisdiction string) string {
	language = normalizeLanguage(language)
	fallback := g.shareableFallback(interactionType, language)
	if g.caller == nil {
		return fallback
	}

	text, err := g.caller.Complete(ctx, CompletionRequest{
		System:      shareableSystemPrompt,
		Prompt:      buildShareablePrompt(interactionType, summary, keyRights, language, jurisdiction),
		MaxTokens:   shareableMaxTokens,
		Temperature: shareableTemperature,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		g.log.Debug("shareable card generation fell back", zap.Error(err))
		return fallback
	}
	return truncateRunes(strings.TrimSpace(text), shareableMaxChars)
}

// truncateRunes caps s at limit runes without splitting a multi-byte char.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}

// Card requests a JSON-shaped rights card. A malformed or failed response
// yields the fixed fallback card for the interaction type.
func (g *Generator) Card(ctx context.Context, interactionType, jurisdiction, situation string) GeneratedCard {
	fallback := g.cardFallback(interactionType, jurisdiction)
	if g.caller == nil {
		return fallback
	}

	text, err := g.caller.Complete(ctx, CompletionRequest{
		System:      cardSystemPrompt,
		Prompt:      buildCardPrompt(interactionType, jurisdiction, situation),
		MaxTokens:   cardMaxTokens,
		Temperature: cardTemperature,
	})
	if err != nil {
		g.log.Debug("card generation fell back", zap.Error(err))
		return fallback
	}

	var parsed struct {
		Title         string   `json:"title"`
		Summary       string   `json:"summary"`
		KeyPoints     []string `json:"keyPoints"`
		ShareableText string   `json:"shareableText"`
	}
	if err := unmarshalModelJSON(text, &parsed); err != nil {
		g.log.Debug("card response unparsable", zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(parsed.Title) == "" || strings.TrimSpace(parsed.Summary) == "" {
		return fallback
	}

	return GeneratedCard{
		Title:           parsed.Title,
		Summary:         parsed.Summary,
		KeyPoints:       parsed.KeyPoints,
		ShareableText:   parsed.ShareableText,
		InteractionType: interactionType,
		State:           jurisdiction,
		Created:         g.now(),
	}
}

// CustomCard requests a sectioned plain-text card and parses it best-effort.
// A failed call returns the catalog's base card for the type and language.
func (g *Generator) CustomCard(ctx context.Context, interactionType, jurisdiction, language string) (CustomCard, error) {
	language = normalizeLanguage(language)
	if !rights.KnownInteractionType(interactionType) {
		return CustomCard{}, fmt.Errorf("%w: %q", rights.ErrUnknownInteractionType, interactionType)
	}

	if g.caller != nil {
		text, err := g.caller.Complete(ctx, CompletionRequest{
			System:      cardSystemPrompt,
			Prompt:      buildCustomCardPrompt(interactionType, jurisdiction, language),
			MaxTokens:   cardMaxTokens,
			Temperature: cardTemperature,
		})
		if err == nil && strings.TrimSpace(text) != "" {
			card := parseSectionedCard(text, language)
			card.InteractionType = interactionType
			card.State = jurisdiction
			card.Language = language
			return card, nil
		}
		g.log.Debug("custom card generation fell back to catalog", zap.Error(err))
	}

	base, err := g.rights.Resolve(interactionType, jurisdiction, language, "")
	if err != nil {
		return CustomCard{}, err
	}
	return customCardFromCatalog(base), nil
}

func (g *Generator) summaryFallback(interactionType string, durationSeconds int, language string) string {
	if language == "es" {
		return fmt.Sprintf("Interacción de %s grabada durante %s",
			displayType(interactionType, "es"), humanDuration(durationSeconds, "es"))
	}
	return fmt.Sprintf("%s interaction recorded for %s",
		displayType(interactionType, "en"), humanDuration(durationSeconds, "en"))
}

func (g *Generator) shareableFallback(interactionType, language string) string {
	if language == "es" {
		return fmt.Sprintf("Conoce tus derechos durante interacciones de %s. Mantente informado, mantente seguro. #ConoceTusDerechos #DerechosCiviles",
			displayType(interactionType, "es"))
	}
	return fmt.Sprintf("Know your rights during %s interactions. Stay informed, stay safe. #KnowYourRights #CivilRights",
		displayType(interactionType, "en"))
}

func (g *Generator) cardFallback(interactionType, jurisdiction string) GeneratedCard {
	return GeneratedCard{
		Title:   titleCase(strings.ReplaceAll(interactionType, "_", " ")) + " Rights",
		Summary: "Know your rights during police interactions. Stay calm, be respectful, and remember you have constitutional protections.",
		KeyPoints: []string{
			"You have the right to remain silent",
			"You can refuse consent to searches",
			"You can ask if you are being detained",
			"You have the right to record interactions",
		},
		ShareableText:   g.shareableFallback(interactionType, "en"),
		InteractionType: interactionType,
		State:           jurisdiction,
		Created:         g.now(),
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func normalizeLanguage(language string) string {
	if language == "es" {
		return "es"
	}
	return "en"
}
