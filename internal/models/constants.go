package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status is the completion flag of a task
type Status int

const (
	StatusOpen      Status = 0
	StatusCompleted Status = 1
)

// NormalizeStatus maps every value other than StatusCompleted to StatusOpen
func NormalizeStatus(s Status) Status {
	if s == StatusCompleted {
		return StatusCompleted
	}
	return StatusOpen
}

// IsCompleted reports whether s is the completed flag
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	if s.IsCompleted() {
		return "done"
	}
	return "open"
}

// ============================================================================
// DEADLINE CONSTANTS
// ============================================================================

// DeadlineLayout is the format deadlines are entered and displayed in (yyyy-MM-dd HH:mm)
const DeadlineLayout = "2006-01-02 15:04"
