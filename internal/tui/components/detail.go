package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/leadboard/internal/cli/styles"
	"github.com/thenoetrevino/leadboard/internal/models"
)

type DetailProps struct {
	Card   models.Card
	Column models.ColumnID
	Width  int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// CardMarkdown builds the markdown document shown in the detail pane
func CardMarkdown(card models.Card, col models.ColumnID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", card.Name)
	fmt.Fprintf(&b, "*#%s in %s*\n\n", card.ID, col.Title())

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- **%s:** %s\n", label, value)
		}
	}
	row("Company", card.Company)
	row("Email", card.Email)
	row("Phone", card.Phone)
	row("Owner", card.Owner)
	if card.Amount != nil {
		row("Amount", styles.FormatAmount(*card.Amount))
	}
	row("Priority", string(card.Priority))
	row("Follow up", card.FollowUpDate)
	if len(card.Tags) > 0 {
		row("Tags", "`"+strings.Join(card.Tags, "` `")+"`")
	}
	return b.String()
}

// RenderDetail renders the card detail pane body. Markdown rendering
// failures fall back to the raw document.
func RenderDetail(p DetailProps) string {
	doc := CardMarkdown(p.Card, p.Column)
	renderer, err := getRenderer(p.Width)
	if err == nil {
		rendered, err := renderer.Render(doc)
		if err == nil {
			return DetailBoxStyle.Render(strings.TrimSpace(rendered))
		}
	}
	return DetailBoxStyle.Width(p.Width).Render(doc)
}
