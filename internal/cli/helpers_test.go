package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// ============================================================================
// Priority Parsing Tests
// ============================================================================

func TestParsePriority_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Priority
	}{
		{"high", models.PriorityHigh},
		{"medium", models.PriorityMedium},
		{"low", models.PriorityLow},
		// Test case insensitivity
		{"HIGH", models.PriorityHigh},
		{"MeDiUm", models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParsePriority(tt.input)
			if err != nil {
				t.Errorf("Expected no error for '%s', got: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Expected %v for '%s', got %v", tt.expected, tt.input, result)
			}
		})
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	for _, input := range []string{"invalid", "critical", "trivial", "", "2"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParsePriority(input); err == nil {
				t.Errorf("Expected error for invalid priority '%s', got nil", input)
			}
		})
	}
}

// ============================================================================
// Status Filter Tests
// ============================================================================

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    StatusFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"open", FilterOpen, false},
		{"DONE", FilterDone, false},
		{"completed", FilterDone, false},
		{"pending", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatusFilter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatusFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatusFilter(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ============================================================================
// Argument Helpers
// ============================================================================

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-1", "4.2"} {
		_, err := ParseTaskID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestReadDescription(t *testing.T) {
	got, err := ReadDescription("inline", strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	got, err = ReadDescription("-", strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)
}

// ============================================================================
// Exit Code Mapping
// ============================================================================

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitNotFound, ExitCode(Exit(ExitNotFound, errors.New("missing"))))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", Exit(ExitValidation, nil))))
}

func TestFailService(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: 7", taskservice.ErrNotFound), ExitNotFound},
		{"validation", fmt.Errorf("%w: %w", taskservice.ErrValidation, taskservice.ErrEmptyName), ExitValidation},
		{"corrupt row", &models.InvalidPriorityLevelError{Level: 9}, ExitDataErr},
		{"storage", fmt.Errorf("%w: boom", taskservice.ErrStorageFault), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			captureStdout(t, func() {
				err = FailService(formatter, 7, tt.err)
			})
			assert.Equal(t, tt.want, ExitCode(err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := fmt.Errorf("%w: %w", taskservice.ErrValidation, taskservice.ErrInvalidDeadline)
	assert.Equal(t, taskservice.ErrInvalidDeadline.Error(), validationMessage(err))
}
