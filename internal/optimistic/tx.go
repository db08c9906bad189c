package optimistic

import (
	"errors"
	"fmt"
)

var (
	ErrTxSettled    = errors.New("transaction already settled")
	ErrTxNotApplied = errors.New("transaction has no applied mutation")
	ErrDuplicateKey = errors.New("entity with this key already exists")
	ErrMissingKey   = errors.New("mutation has no key")
	ErrNotFound     = errors.New("entity not found")
)

type txState int

const (
	txOpen txState = iota
	txApplied
	txCommitted
	txRolledBack
)

// Tx is a single optimistic mutation: snapshot, apply, then commit or rollback.
type Tx[T Entity[T]] struct {
	snapshot Collection[T]
	applied  Collection[T]
	mutation Mutation[T]
	prev     T
	prevPos  int
	state    txState
}

func Begin[T Entity[T]](snapshot Collection[T]) *Tx[T] {
	return &Tx[T]{snapshot: snapshot, prevPos: -1}
}

// Snapshot is the collection as it was before the mutation.
func (tx *Tx[T]) Snapshot() Collection[T] { return tx.snapshot }

// Apply patches the snapshot locally and returns the collection to show.
func (tx *Tx[T]) Apply(m Mutation[T]) (Collection[T], error) {
	if tx.state != txOpen {
		return tx.snapshot, ErrTxSettled
	}
	if m.Key() == "" {
		return tx.snapshot, ErrMissingKey
	}

	pos := tx.snapshot.index(m.Key())
	switch m.Op {
	case OpCreate:
		if pos >= 0 {
			return tx.snapshot, fmt.Errorf("%w: %s", ErrDuplicateKey, m.Key())
		}
		tx.applied = tx.snapshot.insertAt(0, m.Item)
	case OpUpdate:
		if pos < 0 {
			return tx.snapshot, fmt.Errorf("%w: %s", ErrNotFound, m.Key())
		}
		tx.prev, tx.prevPos = tx.snapshot.items[pos].Clone(), pos
		tx.applied = tx.snapshot.replaceAt(pos, m.Item)
	case OpDelete:
		if pos < 0 {
			return tx.snapshot, fmt.Errorf("%w: %s", ErrNotFound, m.Key())
		}
		tx.prev, tx.prevPos = tx.snapshot.items[pos].Clone(), pos
		tx.applied = tx.snapshot.removeAt(pos)
	default:
		return tx.snapshot, fmt.Errorf("unknown mutation %s", m.Op)
	}

	tx.mutation = m
	tx.state = txApplied
	return tx.applied, nil
}

// Commit swaps the optimistic entity in current for the canonical one. The
// entity is matched by the mutation's correlation key, so a server-assigned
// key replaces the optimistic one without leaving a duplicate.
func (tx *Tx[T]) Commit(current Collection[T], canonical T) (Collection[T], error) {
	if tx.state != txApplied {
		return current, ErrTxNotApplied
	}
	tx.state = txCommitted

	if tx.mutation.Op == OpDelete {
		return current, nil
	}

	pos := current.index(tx.mutation.Key())
	if pos < 0 {
		return current.insertAt(0, canonical), nil
	}
	out := current.replaceAt(pos, canonical)

	if canonical.Key() != tx.mutation.Key() {
		for i, it := range out.items {
			if i != pos && it.Key() == canonical.Key() {
				out = out.removeAt(i)
				break
			}
		}
	}
	return out, nil
}

// Rollback undoes the mutation. When nothing else touched the collection
// since Apply, the exact snapshot comes back. Otherwise only this patch is
// reverted so concurrent changes to other entities survive.
func (tx *Tx[T]) Rollback(current Collection[T]) (Collection[T], error) {
	if tx.state != txApplied {
		return current, ErrTxNotApplied
	}
	tx.state = txRolledBack

	if current.version == tx.applied.version {
		return tx.snapshot, nil
	}

	pos := current.index(tx.mutation.Key())
	switch tx.mutation.Op {
	case OpCreate:
		if pos >= 0 {
			return current.removeAt(pos), nil
		}
	case OpUpdate:
		if pos >= 0 {
			return current.replaceAt(pos, tx.prev), nil
		}
		return current.insertAt(tx.prevPos, tx.prev), nil
	case OpDelete:
		if pos < 0 {
			return current.insertAt(tx.prevPos, tx.prev), nil
		}
	}
	return current, nil
}
