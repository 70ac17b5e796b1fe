package cli

import (
	"testing"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and
// an App built on it
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestDB(t)
	return repo, app.New(repo)
}
