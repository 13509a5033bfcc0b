package integrationtests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"scrap-auction/internal/repository"
	workflow "scrap-auction/internal/workflowService"
)

// openTestStore creates a SQLite-backed store in a per-test temp dir.
func openTestStore(t *testing.T, path string) *repository.SQLiteStore {
	t.Helper()

	store, err := repository.OpenSQLiteStore(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestEngine builds a bootstrapped workflow engine over a fresh SQLite store.
func newTestEngine(t *testing.T) (*workflow.WorkflowService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workflow.db")
	store := openTestStore(t, path)

	svc, err := workflow.NewWorkflowService(store)
	require.NoError(t, err)
	require.NoError(t, svc.Bootstrap())
	return svc, path
}
