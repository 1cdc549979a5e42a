package generate

import (
	"fmt"
	"strings"
)

const (
	summarySystemPrompt = "You are a legal assistant helping to create objective summaries of police interactions for documentation purposes. Keep summaries factual, concise, and professional."

	shareableSystemPrompt = "Create shareable social media content about legal rights. Keep it concise, informative, and empowering."

	cardSystemPrompt = "You are a legal rights educator creating accessible, accurate information about civil rights during police interactions. Always emphasize de-escalation and legal compliance while informing about constitutional rights."
)

const (
	summaryMaxTokens   = 200
	shareableMaxTokens = 150
	cardMaxTokens      = 400

	// shareableMaxChars is the hard cap on shareable text; the prompt asks
	// for it, this enforces it.
	shareableMaxChars = 280

	summaryTemperature   = 0.3
	shareableTemperature = 0.4
	cardTemperature      = 0.3
)

// typeDisplayNames maps interaction types to human phrasing per language.
var typeDisplayNames = map[string]map[string]string{
	"en": {
		"traffic_stop": "traffic stop",
		"questioning":  "questioning",
		"home_search":  "home search",
		"arrest":       "arrest",
		"protest":      "protest",
		"other":        "police interaction",
	},
	"es": {
		"traffic_stop": "parada de tráfico",
		"questioning":  "interrogatorio",
		"home_search":  "registro domiciliario",
		"arrest":       "arresto",
		"protest":      "protesta",
		"other":        "interacción policial",
	},
}

func displayType(interactionType, language string) string {
	if names, ok := typeDisplayNames[language]; ok {
		if name, ok := names[interactionType]; ok {
			return name
		}
	}
	return strings.ReplaceAll(interactionType, "_", " ")
}

// humanDuration renders whole seconds as "M minutes and S seconds"
// ("M minutos y S segundos" in Spanish).
func humanDuration(seconds int, language string) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	rest := seconds % 60
	if language == "es" {
		return fmt.Sprintf("%d minutos y %d segundos", minutes, rest)
	}
	return fmt.Sprintf("%d minutes and %d seconds", minutes, rest)
}

func buildSummaryPrompt(interactionType string, durationSeconds int, location, jurisdiction, language string) string {
	var b strings.Builder
	b.WriteString("Generate a concise summary for a legal rights interaction recording with the following details:\n")
	fmt.Fprintf(&b, "- Interaction Type: %s\n", displayType(interactionType, language))
	fmt.Fprintf(&b, "- Duration: %s\n", humanDuration(durationSeconds, language))
	if strings.TrimSpace(location) != "" {
		fmt.Fprintf(&b, "- Location: %s\n", location)
	} else {
		b.WriteString("- Location: Not specified\n")
	}
	if strings.TrimSpace(jurisdiction) != "" && jurisdiction != "General" {
		fmt.Fprintf(&b, "- State: %s\n", jurisdiction)
	}
	if language == "es" {
		b.WriteString("- Respond in Spanish.\n")
	}
	b.WriteString("\nCreate a brief, professional summary that could be shared with legal counsel or trusted contacts. Focus on the key facts and maintain objectivity.")
	return b.String()
}

func buildShareablePrompt(interactionType, summary string, keyRights []string, language, jurisdiction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a shareable card for a %s.", displayType(interactionType, language))
	if strings.TrimSpace(summary) != "" {
		fmt.Fprintf(&b, " Summary: %s.", summary)
	}
	if len(keyRights) > 0 {
		fmt.Fprintf(&b, " Key rights: %s.", strings.Join(keyRights, ", "))
	}
	if strings.TrimSpace(jurisdiction) != "" && jurisdiction != "General" {
		fmt.Fprintf(&b, " State: %s.", jurisdiction)
	}
	if language == "es" {
		b.WriteString(" Respond in Spanish.")
	}
	b.WriteString(" Make it educational and empowering, under 280 characters.")
	return b.String()
}

func buildCardPrompt(interactionType, jurisdiction, context string) string {
	if strings.TrimSpace(context) == "" {
		context = "General interaction"
	}
	return fmt.Sprintf(`Create a shareable legal rights card for the following scenario:
- Interaction Type: %s
- State: %s
- Context: %s

Generate a JSON response with:
- title: Brief, clear title
- summary: 2-3 sentence summary of key rights
- keyPoints: Array of 3-4 most important points
- shareableText: Social media friendly text (under 280 characters)

Focus on practical, actionable information that empowers individuals during police interactions.`, interactionType, jurisdiction, context)
}

func buildCustomCardPrompt(interactionType, jurisdiction, language string) string {
	headers := "Do's / Don'ts / Key Rights / Phrases / Responses"
	if language == "es" {
		headers = "Haz / No Hagas / Derechos Clave / Frases / Respuestas"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Write a rights card for a %s", displayType(interactionType, language))
	if strings.TrimSpace(jurisdiction) != "" && jurisdiction != "General" {
		fmt.Fprintf(&b, " in %s", jurisdiction)
	}
	fmt.Fprintf(&b, " as plain text with these section headers: %s.", headers)
	b.WriteString(" Under each header list 4-6 short bulleted items. No other prose.")
	if language == "es" {
		b.WriteString(" Respond entirely in Spanish.")
	}
	return b.String()
}
