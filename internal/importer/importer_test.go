package importer

import (
	"testing"

	"github.com/example/finance-tracker/internal/ledger"
	"github.com/example/finance-tracker/internal/logger"
	"github.com/example/finance-tracker/internal/storage"
	"github.com/example/finance-tracker/pkg/transaction"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (afero.Fs, *ledger.Store, *Importer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store := ledger.Open(storage.NewFileRepository(fs, "ledger.json", logger.NewNop()), logger.NewNop())
	return fs, store, New(fs, store, logger.NewNop())
}

func TestImporter_ImportFile(t *testing.T) {
	fs, store, imp := setup(t)
	require.NoError(t, afero.WriteFile(fs, "bulk.txt",
		[]byte("food,12.50,expense,2024-01-05\r\nsalary,2000,income,2024-01-01\n"), 0644))

	n, err := imp.ImportFile("bulk.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	groups := store.List()
	require.Len(t, groups, 2)
	assert.Equal(t, "food", groups[0].Category)
	assert.Equal(t, 12.5, groups[0].Transactions[0].Amount)
	assert.Equal(t, "salary", groups[1].Category)
	assert.Equal(t, transaction.Income, groups[1].Transactions[0].Type)
}

func TestImporter_FileNotFound(t *testing.T) {
	_, store, imp := setup(t)

	n, err := imp.ImportFile("missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, 0, n)
	assert.True(t, store.IsEmpty())
}

func TestImporter_MalformedLineAborts(t *testing.T) {
	fs, store, imp := setup(t)
	require.NoError(t, afero.WriteFile(fs, "bulk.txt",
		[]byte("food,12.50,expense,2024-01-05\nsalary,2000,income,2024-01-01\nrent,900,expense\n"), 0644))

	n, err := imp.ImportFile("bulk.txt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
	assert.True(t, transaction.IsParseError(err))
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 2, n)

	// nothing reached the file
	persisted := storage.NewFileRepository(fs, "ledger.json", logger.NewNop()).Load()
	assert.Equal(t, 0, persisted.Len())
	assert.Len(t, store.List(), 2)
}

func TestImporter_BlankLineIsMalformed(t *testing.T) {
	fs, _, imp := setup(t)
	require.NoError(t, afero.WriteFile(fs, "bulk.txt",
		[]byte("food,1,expense,2024-01-05\n\nfood,2,expense,2024-01-06\n"), 0644))

	_, err := imp.ImportFile("bulk.txt")
	assert.ErrorIs(t, err, transaction.ErrInvalidRecord)
}
