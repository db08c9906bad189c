package optimistic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTx_ApplyCommit(t *testing.T) {
	base := NewCollection([]note{{ID: "a"}, {ID: "b"}})
	tx := Begin(base)

	applied, err := tx.Apply(Create(note{ID: "tmp"}))
	require.NoError(t, err)
	assert.Equal(t, 3, applied.Len())
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, base.Version()+1, applied.Version())

	committed, err := tx.Commit(applied, note{ID: "real"})
	require.NoError(t, err)
	items := committed.Items()
	assert.Equal(t, []string{"real", "a", "b"}, []string{items[0].ID, items[1].ID, items[2].ID})

	_, err = tx.Commit(committed, note{ID: "real"})
	assert.ErrorIs(t, err, ErrTxNotApplied)
}

func TestTx_Commit_DropsDuplicateCanonical(t *testing.T) {
	base := NewCollection([]note{{ID: "real"}})
	tx := Begin(base)

	applied, err := tx.Apply(Create(note{ID: "tmp"}))
	require.NoError(t, err)

	committed, err := tx.Commit(applied, note{ID: "real", Text: "canonical"})
	require.NoError(t, err)
	require.Equal(t, 1, committed.Len())
	got, _ := committed.Find("real")
	assert.Equal(t, "canonical", got.Text)
}

func TestTx_RollbackReturnsExactSnapshot(t *testing.T) {
	base := NewCollection([]note{{ID: "a", Tags: []string{"t"}}, {ID: "b"}})
	tx := Begin(base)

	applied, err := tx.Apply(Delete[note]("a"))
	require.NoError(t, err)

	restored, err := tx.Rollback(applied)
	require.NoError(t, err)
	assert.Equal(t, base, restored)
}

func TestTx_RollbackRevertsOnlyOwnPatch(t *testing.T) {
	base := NewCollection([]note{{ID: "a"}, {ID: "b"}})
	tx := Begin(base)

	applied, err := tx.Apply(Delete[note]("b"))
	require.NoError(t, err)

	other := Begin(applied)
	moved, err := other.Apply(Update(note{ID: "a", Text: "other writer"}))
	require.NoError(t, err)

	restored, err := tx.Rollback(moved)
	require.NoError(t, err)
	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "other writer", items[0].Text)
	assert.Equal(t, "b", items[1].ID)
}

func TestTx_ApplyErrors(t *testing.T) {
	base := NewCollection([]note{{ID: "a"}})

	_, err := Begin(base).Apply(Create(note{ID: "a"}))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = Begin(base).Apply(Update(note{ID: "missing"}))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Begin(base).Apply(Create(note{}))
	assert.ErrorIs(t, err, ErrMissingKey)

	tx := Begin(base)
	_, err = tx.Apply(Delete[note]("a"))
	require.NoError(t, err)
	_, err = tx.Apply(Delete[note]("a"))
	assert.ErrorIs(t, err, ErrTxSettled)
}

func TestCollection_SnapshotsAreIsolated(t *testing.T) {
	src := []note{{ID: "a", Tags: []string{"x"}}}
	c := NewCollection(src)

	src[0].Tags[0] = "mutated"
	items := c.Items()
	assert.Equal(t, "x", items[0].Tags[0])

	items[0].Tags[0] = "again"
	got, _ := c.Find("a")
	assert.Equal(t, "x", got.Tags[0])
}
