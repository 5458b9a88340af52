package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_Heading(t *testing.T) {
	out := RenderMarkdown("# Hello")

	assert.Contains(t, out, "Hello")
	assert.NotContains(t, out, "#", "heading marks are stripped for cleaner visuals")
}

func TestRenderMarkdown_HeadingLevels(t *testing.T) {
	out := RenderMarkdown("# Overview\n\n## History\n\n### Founders")

	for _, want := range []string{"Overview", "History", "Founders"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "#")
}

func TestRenderMarkdown_Lists(t *testing.T) {
	out := RenderMarkdown("- first\n* second\n1. third")

	assert.Contains(t, out, "• first")
	assert.Contains(t, out, "• second")
	assert.Contains(t, out, "1. third")
}

func TestRenderMarkdown_Emphasis(t *testing.T) {
	out := RenderMarkdown("**bold** and _sloped_ and *starred*")

	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "sloped")
	assert.Contains(t, out, "starred")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "_")
}

func TestRenderMarkdown_InlineCodeAndLink(t *testing.T) {
	out := RenderMarkdown("see `GET /research` and [the docs](https://example.com/docs)")

	assert.Contains(t, out, "GET /research")
	assert.Contains(t, out, "the docs")
	assert.NotContains(t, out, "](", "link syntax is replaced by its text")
	assert.NotContains(t, out, "`")
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	out := RenderMarkdown("intro\n\n```\ncurl -X POST /research\n```\n\noutro")

	assert.Contains(t, out, "curl -X POST /research")
	assert.NotContains(t, out, "```")
	assert.Contains(t, out, "intro")
	assert.Contains(t, out, "outro")
}

func TestRenderMarkdown_Blockquote(t *testing.T) {
	out := RenderMarkdown("> founded in 1999")

	assert.Contains(t, out, "founded in 1999")
	assert.Contains(t, out, "│")
}

func TestRenderMarkdown_ParagraphReflow(t *testing.T) {
	out := RenderMarkdown("one\ntwo\n\nthree")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "one two", "single newlines join a paragraph")
	assert.Contains(t, out, "three")
}

func TestRenderMarkdown_HeadingNotJoinedIntoParagraph(t *testing.T) {
	out := RenderMarkdown("## Leadership\nThe CEO is Jane Doe.")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Leadership")
	assert.NotContains(t, lines[0], "CEO")
	assert.Contains(t, out, "The CEO is Jane Doe.")
}
