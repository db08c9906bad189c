package optimistic

import "fmt"

type Op int

const (
	OpCreate Op = iota + 1
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Mutation is one requested change. For creates, Item carries the optimistic
// key that later correlates the canonical record.
type Mutation[T Entity[T]] struct {
	Op   Op
	Item T
	key  string
}

func Create[T Entity[T]](item T) Mutation[T] {
	return Mutation[T]{Op: OpCreate, Item: item, key: item.Key()}
}

func Update[T Entity[T]](item T) Mutation[T] {
	return Mutation[T]{Op: OpUpdate, Item: item, key: item.Key()}
}

func Delete[T Entity[T]](key string) Mutation[T] {
	return Mutation[T]{Op: OpDelete, key: key}
}

// Key is the correlation key of the mutated entity.
func (m Mutation[T]) Key() string { return m.key }
