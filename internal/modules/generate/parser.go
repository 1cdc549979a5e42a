package generate

import (
	"strings"

	"github.com/rightscard/core/internal/modules/rights"
)

// Section holds one parsed list plus a flag telling whether the provider
// supplied it or generic defaults were substituted.
type Section struct {
	Items     []string `json:"items"`
	Defaulted bool     `json:"defaulted"`
}

// CustomCard is the best-effort parse of a sectioned plain-text card.
type CustomCard struct {
	InteractionType string  `json:"interactionType"`
	State           string  `json:"state"`
	Language        string  `json:"language"`
	Title           string  `json:"title"`
	Dos             Section `json:"dos"`
	Donts           Section `json:"donts"`
	KeyRights       Section `json:"keyRights"`
	Phrases         Section `json:"phrases"`
	Responses       Section `json:"responses"`
	FromCatalog     bool    `json:"fromCatalog"`
}

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionDos
	sectionDonts
	sectionRights
	sectionPhrases
	sectionResponses
)

// sectionKeywords maps language codes to header keywords. Order matters:
// "don't" is checked before "do" so one doesn't shadow the other.
var sectionKeywords = map[string][]struct {
	kind     sectionKind
	keywords []string
}{
	"en": {
		{sectionDonts, []string{"don't", "dont", "avoid"}},
		{sectionDos, []string{"do's", "dos", "do:", "do "}},
		{sectionRights, []string{"right"}},
		{sectionPhrases, []string{"phrase", "say"}},
		{sectionResponses, []string{"response", "repl"}},
	},
	"es": {
		{sectionDonts, []string{"no hagas", "no hacer", "evita"}},
		{sectionDos, []string{"haz", "hacer", "qué hacer"}},
		{sectionRights, []string{"derecho"}},
		{sectionPhrases, []string{"frase", "di"}},
		{sectionResponses, []string{"respuesta"}},
	},
}

var genericDefaults = map[string]map[sectionKind][]string{
	"en": {
		sectionDos:       {"Remain calm and polite", "Keep your hands visible", "Ask if you are free to leave"},
		sectionDonts:     {"Don't resist or argue", "Don't consent to searches"},
		sectionRights:    {"Right to remain silent", "Right to an attorney", "Right to record the interaction"},
		sectionPhrases:   {"I am exercising my right to remain silent", "Am I free to leave?"},
		sectionResponses: {"I understand, officer", "I prefer to remain silent"},
	},
	"es": {
		sectionDos:       {"Mantén la calma y sé cortés", "Mantén las manos visibles", "Pregunta si eres libre de irte"},
		sectionDonts:     {"No resistas ni discutas", "No consientas a registros"},
		sectionRights:    {"Derecho a permanecer en silencio", "Derecho a un abogado", "Derecho a grabar la interacción"},
		sectionPhrases:   {"Estoy ejerciendo mi derecho a permanecer en silencio", "¿Soy libre de irme?"},
		sectionResponses: {"Entiendo, oficial", "Prefiero permanecer en silencio"},
	},
}

// parseSectionedCard scans the completion line by line, switching sections at
// header lines and collecting bulleted/numbered lines beneath them. Lines
// outside any section are ignored. Empty sections get generic defaults and
// are flagged.
func parseSectionedCard(text, language string) CustomCard {
	collected := map[sectionKind][]string{}
	current := sectionNone
	var title string

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if kind, ok := matchSectionHeader(line, language); ok {
			current = kind
			continue
		}

		item, isBullet := stripBullet(line)
		if !isBullet {
			if title == "" && current == sectionNone {
				title = strings.TrimLeft(line, "# ")
			}
			continue
		}
		if current == sectionNone || item == "" {
			continue
		}
		collected[current] = append(collected[current], item)
	}

	card := CustomCard{Title: title, Language: language}
	card.Dos = buildSection(collected, sectionDos, language)
	card.Donts = buildSection(collected, sectionDonts, language)
	card.KeyRights = buildSection(collected, sectionRights, language)
	card.Phrases = buildSection(collected, sectionPhrases, language)
	card.Responses = buildSection(collected, sectionResponses, language)
	return card
}

func buildSection(collected map[sectionKind][]string, kind sectionKind, language string) Section {
	if items := collected[kind]; len(items) > 0 {
		return Section{Items: items}
	}
	defaults := genericDefaults[language]
	if defaults == nil {
		defaults = genericDefaults["en"]
	}
	items := make([]string, len(defaults[kind]))
	copy(items, defaults[kind])
	return Section{Items: items, Defaulted: true}
}

// matchSectionHeader recognizes header lines: short lines whose text contains
// a section keyword, optionally decorated with markdown markers or a colon.
func matchSectionHeader(line, language string) (sectionKind, bool) {
	stripped := strings.ToLower(strings.Trim(line, "#*_ \t"))
	stripped = strings.TrimSuffix(stripped, ":")
	if stripped == "" || len(stripped) > 40 {
		return sectionNone, false
	}
	if _, isBullet := stripBullet(line); isBullet {
		return sectionNone, false
	}

	rules, ok := sectionKeywords[language]
	if !ok {
		rules = sectionKeywords["en"]
	}
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(stripped, kw) {
				return rule.kind, true
			}
		}
	}
	return sectionNone, false
}

// stripBullet removes a leading bullet or number marker, reporting whether
// the line had one.
func stripBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "• ", "– "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}

	// Numbered markers: "1." / "2)" with up to two digits.
	for i := 0; i < len(trimmed) && i < 3; i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			if i > 0 && (trimmed[i] == '.' || trimmed[i] == ')') {
				return strings.TrimSpace(trimmed[i+1:]), true
			}
			break
		}
	}
	return trimmed, false
}

func customCardFromCatalog(base rights.Card) CustomCard {
	return CustomCard{
		InteractionType: base.InteractionType,
		State:           base.State,
		Language:        base.Language,
		Title:           base.Title,
		Dos:             Section{Items: base.Content.Dos},
		Donts:           Section{Items: base.Content.Donts},
		KeyRights:       Section{Items: base.Content.KeyRights},
		Phrases:         Section{Items: base.Script.Phrases},
		Responses:       Section{Items: base.Script.Responses},
		FromCatalog:     true,
	}
}
