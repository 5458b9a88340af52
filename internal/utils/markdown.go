package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markdown styles
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75"))
}

func SubheadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func CodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

func CodeBlockStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		MarginLeft(2)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		MarginLeft(2)
}

func QuoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("245")).
		MarginLeft(2)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Underline(true)
}

func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func ItalicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

var (
	orderedItemRe    = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	inlineCodeRe     = regexp.MustCompile("`[^`]+`")
	linkRe           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldRe           = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicStarRe     = regexp.MustCompile(`(^|[^*])\*([^*\s][^*]*)\*`)
	italicUnderRe    = regexp.MustCompile(`_([^_]+)_`)
	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
)

// RenderMarkdown converts a markdown report into styled terminal text.
// It covers what the backend's reports actually contain: ATX headings,
// unordered and ordered lists, fenced code blocks, blockquotes, inline
// code, links, bold and italic.
func RenderMarkdown(text string) string {
	var out strings.Builder

	inCodeBlock := false

	for _, line := range splitBlocks(text) {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}

		if inCodeBlock {
			out.WriteString(CodeBlockStyle().Render(line) + "\n")
			continue
		}

		out.WriteString(renderLine(line) + "\n")
	}

	return strings.TrimSuffix(out.String(), "\n")
}

// renderLine styles one non-code line according to its block prefix.
func renderLine(line string) string {
	if heading, level, ok := cutHeading(line); ok {
		if level == 1 || level == 2 {
			return HeadingStyle().Render(renderInline(heading))
		}
		return SubheadingStyle().Render(renderInline(heading))
	}

	if item, found := strings.CutPrefix(line, "- "); found {
		return ListStyle().Render("• " + renderInline(item))
	}
	if item, found := strings.CutPrefix(line, "* "); found {
		return ListStyle().Render("• " + renderInline(item))
	}
	if m := orderedItemRe.FindStringSubmatch(line); len(m) == 3 {
		return ListStyle().Render(m[1] + ". " + renderInline(m[2]))
	}

	if quote, found := strings.CutPrefix(line, "> "); found {
		return QuoteStyle().Render("│ " + renderInline(quote))
	}

	return renderInline(line)
}

// cutHeading strips an ATX heading marker and reports its level.
func cutHeading(line string) (string, int, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level >= len(line) || line[level] != ' ' {
		return "", 0, false
	}
	return strings.TrimSpace(line[level:]), level, true
}

// renderInline styles span-level markdown. Code spans go first so their
// content is not reprocessed, then links, then emphasis.
func renderInline(line string) string {
	line = inlineCodeRe.ReplaceAllStringFunc(line, func(match string) string {
		return CodeStyle().Render(strings.Trim(match, "`"))
	})

	line = linkRe.ReplaceAllStringFunc(line, func(match string) string {
		m := linkRe.FindStringSubmatch(match)
		return LinkStyle().Render(m[1])
	})

	line = boldRe.ReplaceAllStringFunc(line, func(match string) string {
		return BoldStyle().Render(strings.Trim(match, "*"))
	})

	line = italicUnderRe.ReplaceAllStringFunc(line, func(match string) string {
		return ItalicStyle().Render(strings.Trim(match, "_"))
	})

	line = italicStarRe.ReplaceAllStringFunc(line, func(match string) string {
		m := italicStarRe.FindStringSubmatch(match)
		return m[1] + ItalicStyle().Render(m[2])
	})

	return line
}

// splitBlocks reflows markdown source into display lines: blank-line
// separated paragraphs become single lines, while headings, list items,
// quotes and code fences keep their own line.
func splitBlocks(text string) []string {
	var blocks []string

	inCodeBlock := false

	for _, paragraph := range paragraphBreakRe.Split(text, -1) {
		var runon []string

		flush := func() {
			if len(runon) > 0 {
				blocks = append(blocks, strings.Join(runon, " "))
				runon = nil
			}
		}

		for _, line := range strings.Split(paragraph, "\n") {
			if inCodeBlock {
				// Preserve code verbatim, including blank-ish lines.
				blocks = append(blocks, line)
				if strings.HasPrefix(strings.TrimSpace(line), "```") {
					inCodeBlock = false
				}
				continue
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "```") {
				flush()
				blocks = append(blocks, line)
				inCodeBlock = true
				continue
			}

			if isBlockLine(line) {
				flush()
				blocks = append(blocks, line)
				continue
			}

			runon = append(runon, line)
		}

		flush()
	}

	return blocks
}

// isBlockLine reports whether a line starts its own block and must not be
// joined into the surrounding paragraph.
func isBlockLine(line string) bool {
	if strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "> ") {
		return true
	}
	return orderedItemRe.MatchString(line)
}
