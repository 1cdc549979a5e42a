// Package rights holds the static rights-content catalog and the resolver
// that merges base cards with per-state variations.
package rights

import "errors"

// Interaction types form a closed set. Lookups outside it fail with
// ErrUnknownInteractionType.
const (
	TypeTrafficStop = "traffic_stop"
	TypeQuestioning = "questioning"
	TypeHomeSearch  = "home_search"
	TypeArrest      = "arrest"
	TypeProtest     = "protest"
	TypeOther       = "other"
)

const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"
)

// GeneralJurisdiction is the sentinel meaning "no state selected";
// it never carries variations.
const GeneralJurisdiction = "General"

var ErrUnknownInteractionType = errors.New("unknown interaction type")

// InteractionTypes lists the canonical interaction-type enumeration.
var InteractionTypes = []string{
	TypeTrafficStop,
	TypeQuestioning,
	TypeHomeSearch,
	TypeArrest,
	TypeProtest,
	TypeOther,
}

// Languages lists the supported content languages.
var Languages = []string{LanguageEnglish, LanguageSpanish}

// KnownInteractionType reports whether t is in the enumerated set.
func KnownInteractionType(t string) bool {
	for _, known := range InteractionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CardContent is the advisory body of a rights card.
type CardContent struct {
	Dos               []string `json:"dos"`
	Donts             []string `json:"donts"`
	KeyRights         []string `json:"keyRights"`
	EmergencyContacts []string `json:"emergencyContacts,omitempty"`
	LegalResources    []string `json:"legalResources,omitempty"`
}

// CardScript holds suggested wording for the encounter.
type CardScript struct {
	Phrases          []string `json:"phrases"`
	Responses        []string `json:"responses"`
	EmergencyPhrases []string `json:"emergencyPhrases,omitempty"`
}

// Card is a fully resolved rights card. Once resolved it is never mutated;
// changing state/type/language produces a new card.
type Card struct {
	CardID          string      `json:"cardId"`
	State           string      `json:"state"`
	InteractionType string      `json:"interactionType"`
	Language        string      `json:"language"`
	Context         string      `json:"context,omitempty"`
	Title           string      `json:"title"`
	Content         CardContent `json:"content"`
	Script          CardScript  `json:"script"`
}

// baseCard is a catalog entry before jurisdiction/identity are applied.
type baseCard struct {
	Title   string
	Content CardContent
	Script  CardScript
}

// Variation holds per-(state, interaction type) additions. Entries are
// appended after the base card's lists, never replacing them.
type Variation struct {
	AdditionalRights []string `json:"additionalRights,omitempty"`
	AdditionalDos    []string `json:"additionalDos,omitempty"`
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func (c CardContent) clone() CardContent {
	return CardContent{
		Dos:               copyStrings(c.Dos),
		Donts:             copyStrings(c.Donts),
		KeyRights:         copyStrings(c.KeyRights),
		EmergencyContacts: copyStrings(c.EmergencyContacts),
		LegalResources:    copyStrings(c.LegalResources),
	}
}

func (s CardScript) clone() CardScript {
	return CardScript{
		Phrases:          copyStrings(s.Phrases),
		Responses:        copyStrings(s.Responses),
		EmergencyPhrases: copyStrings(s.EmergencyPhrases),
	}
}
