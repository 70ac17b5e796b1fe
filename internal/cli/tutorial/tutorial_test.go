package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/testutil"
)

func TestTutorialCmd_Raw(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, []string{"--raw"})

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	require.NoError(t, err)
	assert.Equal(t, tutorialContent, output)
	assert.Contains(t, output, "tick add")
}

func TestTutorialCmd_Rendered(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, nil)

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Exit code")
}
