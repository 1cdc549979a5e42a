package cards

import (
	"testing"

	"github.com/rightscard/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderShareHTML(t *testing.T) {
	card := &models.ShareableCardModel{
		Title:         "Traffic Stop Rights",
		Content:       "Stay calm and **know your rights**.",
		KeyPoints:     models.StringArray{"Remain silent", "Refuse consent to search"},
		ShareableText: "Know your rights. #KnowYourRights",
		Language:      "en",
	}

	html, err := renderShareHTML(card)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Traffic Stop Rights</title>")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>know your rights</strong>")
	assert.Contains(t, html, "<li>Remain silent</li>")
	assert.Contains(t, html, "<blockquote>")
	assert.Contains(t, html, `lang="en"`)
}

func TestRenderShareHTMLEscapesTitleAndLang(t *testing.T) {
	card := &models.ShareableCardModel{
		Title:    `</title><script>alert(1)</script>`,
		Language: `en"><script>`,
	}

	page, err := renderShareHTML(card)
	require.NoError(t, err)

	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "<title>&lt;/title&gt;&lt;script&gt;alert(1)&lt;/script&gt;</title>")
	assert.Contains(t, page, `lang="en&#34;&gt;&lt;script&gt;"`)
}

func TestRenderShareHTMLMinimalCard(t *testing.T) {
	card := &models.ShareableCardModel{Title: "Arrest Rights"}

	html, err := renderShareHTML(card)
	require.NoError(t, err)

	assert.Contains(t, html, "Arrest Rights")
	assert.NotContains(t, html, "Key Points")
	assert.Contains(t, html, `lang="en"`)
}
