package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepai/internal/normalize"
	"github.com/abhisek/prepai/internal/ui/theme"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// QuestionList renders question/answer records as a numbered list.
func QuestionList(records []normalize.QuestionAnswer, width int) string {
	if len(records) == 0 {
		return theme.Hint.Render("No questions.")
	}
	if width <= 0 {
		width = DefaultWidth
	}

	blocks := make([]string, 0, len(records))
	for i, r := range records {
		q := theme.Question.Width(width).Render(fmt.Sprintf("%d. %s", i+1, r.Question))
		a := theme.Answer.Width(width).Render(r.Answer)
		blocks = append(blocks, q+"\n"+a)
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(blocks, "\n\n"))
}

// ConceptCard renders a concept explanation with its title above a bordered
// body.
func ConceptCard(rec normalize.ConceptExplanation, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	title := theme.Title.Render(rec.Title)
	body := theme.Card.Width(width).Render(theme.Body.Render(rec.Explanation))
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// FallbackNotice explains that a concept record was synthesized.
func FallbackNotice(reason string) string {
	msg := "Model output was not a structured explanation; showing raw text."
	if reason != "" {
		msg += " (" + reason + ")"
	}
	return theme.Degraded.Render(msg)
}

// Discarded reports how many batch entries were dropped.
func Discarded(n int) string {
	if n == 0 {
		return ""
	}
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	return theme.Hint.Render(fmt.Sprintf("%d incomplete %s discarded.", n, noun))
}

// Status renders a success or failure mark.
func Status(ok bool) string {
	if ok {
		return theme.OK.Render("✓")
	}
	return theme.Failed.Render("✗")
}

// Rule renders a horizontal separator of the given width.
func Rule(width int) string {
	return theme.Subtitle.Render(strings.Repeat("─", width))
}
