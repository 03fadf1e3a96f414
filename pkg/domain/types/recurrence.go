package types

import "fmt"

// RecurrencePattern represents how often a recurring meeting repeats
type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// AllRecurrencePatterns returns all valid recurrence patterns
func AllRecurrencePatterns() []RecurrencePattern {
	return []RecurrencePattern{
		RecurrenceDaily,
		RecurrenceWeekly,
		RecurrenceMonthly,
	}
}

// IsValid checks if the recurrence pattern is valid
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceDaily,
		RecurrenceWeekly,
		RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the recurrence pattern
func (p RecurrencePattern) String() string {
	return string(p)
}

// ParseRecurrencePattern parses a string into a RecurrencePattern
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	p := RecurrencePattern(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid recurrence pattern: %s", s)
	}
	return p, nil
}
