package rights

import "fmt"

// Service resolves rights cards from the static catalog. Lookups are pure;
// the catalogs are never mutated after startup.
type Service struct {
	english    map[string]baseCard
	spanish    map[string]baseCard
	variations map[string]map[string]Variation
}

func NewService() *Service {
	return &Service{
		english:    englishCatalog,
		spanish:    spanishCatalog,
		variations: stateVariations,
	}
}

// BaseCard returns the catalog card for (interactionType, language) with
// identity fields unset. Callers receive a deep copy.
func (s *Service) BaseCard(interactionType, language string) (Card, error) {
	if !KnownInteractionType(interactionType) {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownInteractionType, interactionType)
	}

	entry, ok := s.catalogFor(language)[interactionType]
	if !ok {
		// Untranslated types fall back to English content.
		entry = s.english[interactionType]
	}

	return Card{
		InteractionType: interactionType,
		Language:        normalizeLanguage(language),
		Title:           entry.Title,
		Content:         entry.Content.clone(),
		Script:          entry.Script.clone(),
	}, nil
}

// Variation returns the additive entry for (jurisdiction, interactionType).
// Absence is not an error.
func (s *Service) Variation(jurisdiction, interactionType string) (Variation, bool) {
	byType, ok := s.variations[jurisdiction]
	if !ok {
		return Variation{}, false
	}
	v, ok := byType[interactionType]
	if !ok {
		return Variation{}, false
	}
	return Variation{
		AdditionalRights: copyStrings(v.AdditionalRights),
		AdditionalDos:    copyStrings(v.AdditionalDos),
	}, true
}

// Resolve produces the final card for the user's selection. State variations
// append after base entries; "General" contributes nothing. Context is
// carried as metadata only.
func (s *Service) Resolve(interactionType, jurisdiction, language, context string) (Card, error) {
	if jurisdiction == "" {
		jurisdiction = GeneralJurisdiction
	}

	card, err := s.BaseCard(interactionType, language)
	if err != nil {
		return Card{}, err
	}

	if jurisdiction != GeneralJurisdiction {
		if v, ok := s.Variation(jurisdiction, interactionType); ok {
			card.Content.KeyRights = append(card.Content.KeyRights, v.AdditionalRights...)
			card.Content.Dos = append(card.Content.Dos, v.AdditionalDos...)
		}
	}

	card.State = jurisdiction
	card.CardID = CardID(interactionType, jurisdiction, card.Language)
	card.Context = context
	return card, nil
}

// CardID builds the deterministic identifier "<type>-<state>-<language>".
func CardID(interactionType, jurisdiction, language string) string {
	return fmt.Sprintf("%s-%s-%s", interactionType, jurisdiction, normalizeLanguage(language))
}

func (s *Service) catalogFor(language string) map[string]baseCard {
	if normalizeLanguage(language) == LanguageSpanish {
		return s.spanish
	}
	return s.english
}

func normalizeLanguage(language string) string {
	if language == LanguageSpanish {
		return LanguageSpanish
	}
	return LanguageEnglish
}
