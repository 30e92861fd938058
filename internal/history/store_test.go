package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoices.csv")
	return NewStore(path, zap.NewNop()), path
}

func record(name string) domain.HistoryRecord {
	return domain.HistoryRecord{
		ClientName:  name,
		ClientEmail: name + "@example.com",
		Date:        time.Date(2026, 8, 30, 14, 3, 5, 0, time.UTC),
		Subtotal:    20.00,
		Tax:         3.60,
		GrandTotal:  23.60,
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	store, _ := testStore(t)

	records, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend_CreatesHeader(t *testing.T) {
	store, path := testStore(t)

	require.NoError(t, store.Append(record("Acme")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Client Name,Client Email,Date,Subtotal,GST,Grand Total\n")
	assert.Contains(t, string(raw), "Acme,Acme@example.com,2026-08-30 14:03:05,20.00,3.60,23.60\n")
}

func TestAppend_RoundTrip(t *testing.T) {
	store, _ := testStore(t)

	for i, name := range []string{"Acme", "Globex", "Initech"} {
		require.NoError(t, store.Append(record(name)))

		records, err := store.LoadAll()
		require.NoError(t, err)
		require.Len(t, records, i+1)
		assert.Equal(t, record(name), records[len(records)-1])
	}
}

func TestAppend_SurvivesReopen(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Append(record("Acme")))

	// A fresh store on the same path models a process restart.
	reopened := NewStore(path, zap.NewNop())
	require.NoError(t, reopened.Append(record("Globex")))

	records, err := reopened.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Acme", records[0].ClientName)
	assert.Equal(t, "Globex", records[1].ClientName)
}

func TestAppend_DoesNotRewriteExistingRows(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Append(record("Acme")))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Append(record("Globex")))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after[:len(before)]))
}
