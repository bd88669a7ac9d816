package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1200, "$1,200"},
		{1234567, "$1,234,567"},
		{99.5, "$99.50"},
		{-4200, "-$4,200"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestRenderCardDetail_SkipsEmptyFields(t *testing.T) {
	Init(config.MonochromeColorScheme())
	t.Cleanup(func() { Init(config.DefaultColorScheme()) })

	card := models.Card{
		ID:       "3",
		Name:     "Acme Corp",
		Email:    "ops@acme.test",
		Amount:   models.AmountPtr(1200),
		Priority: models.PriorityHigh,
		Tags:     []string{"inbound", "q3"},
	}

	out := RenderCardDetail(card, models.ColumnQualified)
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "#3 in Qualified")
	assert.Contains(t, out, "ops@acme.test")
	assert.Contains(t, out, "$1,200")
	assert.Contains(t, out, "[high]")
	assert.Contains(t, out, "inbound, q3")
	assert.NotContains(t, out, "Phone:")
	assert.NotContains(t, out, "Company:")
}

func TestRenderBoard_ListsEveryColumn(t *testing.T) {
	b := models.NewBoard()
	b[models.ColumnNew] = []models.Card{{ID: "1", Name: "Priya Raman"}}

	out := RenderBoard(b)
	for _, col := range models.ColumnOrder {
		assert.Contains(t, out, col.Title())
	}
	assert.Contains(t, out, "Priya Raman")
	assert.Equal(t, 4, strings.Count(out, "(empty)"))
}
