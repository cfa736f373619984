package state

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Board is the drawing model: entities in paint order, later ones on top.
//
// Mutations are expected from a single goroutine (the UI loop); the lock
// only protects readers such as the live mirror.
type Board struct {
	mu        sync.RWMutex
	entities  []Entity
	clock     *clock
	listeners []func(Op)
}

func NewBoard() *Board {
	return &Board{clock: newClock()}
}

// Site identifies this board in emitted ops.
func (b *Board) Site() string { return b.clock.site }

// OnOp registers fn to receive every change. fn runs on the mutating
// goroutine after the board lock has been released.
func (b *Board) OnOp(fn func(Op)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

func (b *Board) emit(op Op) {
	op = b.clock.stamp(op)
	b.mu.RLock()
	listeners := slices.Clone(b.listeners)
	b.mu.RUnlock()
	for _, fn := range listeners {
		fn(op)
	}
}

// Append adds e on top of the board.
func (b *Board) Append(e Entity) {
	b.mu.Lock()
	b.entities = append(b.entities, e)
	idx := len(b.entities) - 1
	b.mu.Unlock()

	rec := RecordOf(e)
	b.emit(Op{Type: OpInsert, Index: idx, Entity: &rec})
}

// Replace swaps the stroke strokeID for g in the same slot. It reports false,
// and changes nothing, when that stroke is no longer on the board.
func (b *Board) Replace(strokeID uuid.UUID, g *Glyph) bool {
	b.mu.Lock()
	idx := b.indexLocked(strokeID)
	if idx < 0 {
		b.mu.Unlock()
		return false
	}
	if _, ok := b.entities[idx].(*Stroke); !ok {
		b.mu.Unlock()
		return false
	}
	b.entities[idx] = g
	b.mu.Unlock()

	rec := RecordOf(g)
	b.emit(Op{Type: OpReplace, Index: idx, Target: strokeID, Entity: &rec})
	return true
}

// Undo removes the top entity.
func (b *Board) Undo() (Entity, bool) {
	b.mu.Lock()
	if len(b.entities) == 0 {
		b.mu.Unlock()
		return nil, false
	}
	idx := len(b.entities) - 1
	e := b.entities[idx]
	b.entities[idx] = nil
	b.entities = b.entities[:idx]
	b.mu.Unlock()

	b.emit(Op{Type: OpRemove, Index: idx, Target: e.EntityID()})
	return e, true
}

// Clear removes every entity.
func (b *Board) Clear() {
	b.mu.Lock()
	b.entities = nil
	b.mu.Unlock()

	b.emit(Op{Type: OpClear})
}

// Load replaces the whole board with es.
func (b *Board) Load(es []Entity) {
	b.mu.Lock()
	b.entities = append([]Entity(nil), es...)
	b.mu.Unlock()

	b.emit(Op{Type: OpLoad, Entities: Records(es)})
}

// Entities returns the entities in paint order. The slice is a copy; the
// entities themselves are shared and must not be modified.
func (b *Board) Entities() []Entity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Entity(nil), b.entities...)
}

// Snapshot returns a load op describing the current board, for peers that
// join late.
func (b *Board) Snapshot() Op {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Op{Type: OpLoad, Entities: Records(b.entities), Site: b.clock.site, Lamport: b.clock.lamport.Load()}
}

// Index returns the slot of the entity with the given id, or -1.
func (b *Board) Index(id uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indexLocked(id)
}

func (b *Board) indexLocked(id uuid.UUID) int {
	for i, e := range b.entities {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entities)
}

// Apply replays an op emitted by another board. Inserts of entities already
// present, and replaces or removes of missing ones, are ignored so an op
// that is also covered by a snapshot can be applied twice. Apply does not
// emit.
func (b *Board) Apply(op Op) error {
	switch op.Type {
	case OpInsert, OpReplace:
		if op.Entity == nil {
			return fmt.Errorf("%s op without entity", op.Type)
		}
		e, err := op.Entity.Entity()
		if err != nil {
			return err
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.indexLocked(e.EntityID()) >= 0 {
			return nil
		}
		if op.Type == OpReplace {
			if idx := b.indexLocked(op.Target); idx >= 0 {
				b.entities[idx] = e
			}
			return nil
		}
		idx := min(max(op.Index, 0), len(b.entities))
		b.entities = slices.Insert(b.entities, idx, e)
	case OpRemove:
		b.mu.Lock()
		defer b.mu.Unlock()
		if idx := b.indexLocked(op.Target); idx >= 0 {
			b.entities = slices.Delete(b.entities, idx, idx+1)
		}
	case OpClear:
		b.mu.Lock()
		b.entities = nil
		b.mu.Unlock()
	case OpLoad:
		es := make([]Entity, 0, len(op.Entities))
		for _, r := range op.Entities {
			e, err := r.Entity()
			if err != nil {
				return err
			}
			es = append(es, e)
		}
		b.mu.Lock()
		b.entities = es
		b.mu.Unlock()
	default:
		return fmt.Errorf("unknown op type %q", op.Type)
	}
	return nil
}
