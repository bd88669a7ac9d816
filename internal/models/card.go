package models

import (
	"fmt"
	"time"
)

// FollowUpDateLayout is the ISO date format used for follow-up dates
const FollowUpDateLayout = "2006-01-02"

// Card represents one pipeline item (a lead or opportunity).
// ID is stable for the lifetime of the card; everything else is display data.
type Card struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Company      string   `json:"company,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Owner        string   `json:"owner,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	FollowUpDate string   `json:"followUpDate,omitempty"`
	Priority     Priority `json:"priority,omitempty"`
}

// Validate checks the card's required fields and value ranges
func (c Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCard)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: card %q has no name", ErrInvalidCard, c.ID)
	}
	if c.Amount != nil && *c.Amount < 0 {
		return fmt.Errorf("%w: card %q has negative amount", ErrInvalidCard, c.ID)
	}
	if !c.Priority.Valid() {
		return fmt.Errorf("%w: card %q has unknown priority %q", ErrInvalidCard, c.ID, c.Priority)
	}
	if c.FollowUpDate != "" {
		if _, err := c.FollowUp(); err != nil {
			return fmt.Errorf("%w: card %q: %v", ErrInvalidCard, c.ID, err)
		}
	}
	return nil
}

// FollowUp parses the follow-up date.
// Full RFC 3339 timestamps are accepted as well as plain dates.
func (c Card) FollowUp() (time.Time, error) {
	if t, err := time.Parse(FollowUpDateLayout, c.FollowUpDate); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, c.FollowUpDate)
}

// Clone returns a deep copy of the card
func (c Card) Clone() Card {
	out := c
	if c.Amount != nil {
		amount := *c.Amount
		out.Amount = &amount
	}
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// Equal compares two cards field by field.
// Tags are an unordered set.
func (c Card) Equal(o Card) bool {
	if c.ID != o.ID || c.Name != o.Name || c.Company != o.Company ||
		c.Email != o.Email || c.Phone != o.Phone || c.Owner != o.Owner ||
		c.FollowUpDate != o.FollowUpDate || c.Priority != o.Priority {
		return false
	}
	if (c.Amount == nil) != (o.Amount == nil) {
		return false
	}
	if c.Amount != nil && *c.Amount != *o.Amount {
		return false
	}
	return sameTags(c.Tags, o.Tags)
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, t := range a {
		counts[t]++
	}
	for _, t := range b {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}

// AmountPtr is a convenience for building cards with an amount
func AmountPtr(v float64) *float64 {
	return &v
}
