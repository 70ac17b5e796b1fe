package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task. The integer value is the level stored
// in the todos.priority column.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// DefaultPriority is used when a task is created without an explicit priority
const DefaultPriority = PriorityMedium

// Priorities lists every valid priority, highest first
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriorityLevel decodes a stored priority level.
// Unknown levels return an *InvalidPriorityLevelError.
func ParsePriorityLevel(level int) (Priority, error) {
	p := Priority(level)
	if !p.Valid() {
		return 0, &InvalidPriorityLevelError{Level: level}
	}
	return p, nil
}

// ParsePriorityName maps a user supplied name (high, medium, low) to a Priority
func ParsePriorityName(name string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("invalid priority '%s' (must be: high, medium, low)", name)
	}
}

// Valid reports whether p is one of the defined levels
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Level returns the integer encoding of p
func (p Priority) Level() int {
	return int(p)
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

