package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtrace/prose2actions/internal/convert"
	"github.com/chemtrace/prose2actions/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStore(conn, convert.NewConverter())
}

func TestStoreImportExport(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	samples := testSamples()

	n, err := store.Import(ctx, "train", OriginAnnotated, samples)
	require.NoError(t, err)
	assert.Equal(t, len(samples), n)

	exported, err := store.Export(ctx, "train")
	require.NoError(t, err)
	require.Len(t, exported, len(samples))
	for i := range samples {
		assert.True(t, exported[i].Equal(samples[i]))
	}
}

func TestStoreImportSkipsDuplicateText(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	samples := testSamples()

	_, err := store.Import(ctx, "train", OriginAnnotated, samples)
	require.NoError(t, err)

	n, err := store.Import(ctx, "train", OriginAugmented, samples)
	require.NoError(t, err)
	assert.Zero(t, n)

	// the same text in another dataset is a distinct sample
	n, err = store.Import(ctx, "valid", OriginAnnotated, samples[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreStats(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	samples := testSamples()

	_, err := store.Import(ctx, "train", OriginAnnotated, samples)
	require.NoError(t, err)
	_, err = store.Import(ctx, "valid", OriginAugmented, samples[:1])
	require.NoError(t, err)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DatasetStat{
		{Dataset: "train", Origin: OriginAnnotated, Count: 2},
		{Dataset: "valid", Origin: OriginAugmented, Count: 1},
	}, stats)
}

func TestStoreDeleteDataset(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Import(ctx, "train", OriginAnnotated, testSamples())
	require.NoError(t, err)

	n, err := store.DeleteDataset(ctx, "train")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	exported, err := store.Export(ctx, "train")
	require.NoError(t, err)
	assert.Empty(t, exported)
}
