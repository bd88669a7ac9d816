// Package styles renders cards and boards for human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Email:", "Amount:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers in board output

	// Notice styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	priorityColors = map[models.Priority]string{}
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	priorityColors = map[models.Priority]string{
		models.PriorityLow:    colors.PriorityLow,
		models.PriorityMedium: colors.PriorityMedium,
		models.PriorityHigh:   colors.PriorityHigh,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderPriority renders a priority as "[high]" in its theme color
func RenderPriority(p models.Priority) string {
	if p == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(priorityColors[p])).
		Bold(true).
		Render("[" + string(p) + "]")
}

// FormatAmount renders a deal value with thousands separators
func FormatAmount(v float64) string {
	whole := int64(v)
	s := fmt.Sprintf("%d", whole)
	if whole < 0 {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if frac := v - float64(whole); frac > 0.004 {
		out += fmt.Sprintf(".%02d", int((frac+0.005)*100))
	}
	if whole < 0 {
		out = "-" + out
	}
	return out
}

// RenderCardLine renders a one-line summary: "• 3 Acme Corp (Acme) $1,200 [high]"
func RenderCardLine(card models.Card) string {
	parts := []string{"•", SubtitleStyle.Render(card.ID), ValueStyle.Render(card.Name)}
	if card.Company != "" {
		parts = append(parts, SubtitleStyle.Render("("+card.Company+")"))
	}
	if card.Amount != nil {
		parts = append(parts, ValueStyle.Render(FormatAmount(*card.Amount)))
	}
	if p := RenderPriority(card.Priority); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// RenderCardDetail renders every populated field of a card inside a bordered box
func RenderCardDetail(card models.Card, col models.ColumnID) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(card.Name))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("#%s in %s", card.ID, col.Title())))
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(value))
	}

	field("Company", card.Company)
	field("Email", card.Email)
	field("Phone", card.Phone)
	field("Owner", card.Owner)
	if card.Amount != nil {
		field("Amount", FormatAmount(*card.Amount))
	}
	field("Follow up", card.FollowUpDate)
	if card.Priority != "" {
		field("Priority", RenderPriority(card.Priority))
	}
	if len(card.Tags) > 0 {
		field("Tags", strings.Join(card.Tags, ", "))
	}

	return CardStyle.Render(b.String())
}

// RenderBoard renders every column with its cards, in pipeline order
func RenderBoard(b models.Board) string {
	var out strings.Builder
	for i, col := range models.ColumnOrder {
		cards := b[col]
		header := fmt.Sprintf("%s (%d)", col.Title(), len(cards))
		if i == 0 {
			out.WriteString(TitleStyle.Render(header))
		} else {
			out.WriteString(SectionStyle.Render(header))
		}
		out.WriteString("\n")
		if len(cards) == 0 {
			out.WriteString(SubtitleStyle.Render("  (empty)"))
			out.WriteString("\n")
			continue
		}
		for _, card := range cards {
			out.WriteString("  ")
			out.WriteString(RenderCardLine(card))
			out.WriteString("\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
