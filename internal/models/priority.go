package models

// Priority is the optional urgency of a lead.
// The zero value means no priority was set.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is empty or one of the known levels
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
