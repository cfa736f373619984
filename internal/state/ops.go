package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

type OpType string

const (
	OpInsert  OpType = "insert"
	OpReplace OpType = "replace"
	OpRemove  OpType = "remove"
	OpClear   OpType = "clear"
	OpLoad    OpType = "load"
)

// Op describes one change to a Board. Index is the slot affected by insert,
// replace and remove; Target is the id of the entity that was replaced or
// removed.
type Op struct {
	Type     OpType    `json:"type"`
	Index    int       `json:"index"`
	Target   uuid.UUID `json:"target,omitzero"`
	Entity   *Record   `json:"entity,omitempty"`
	Entities []Record  `json:"entities,omitempty"`
	Lamport  uint64    `json:"lamport"`
	Site     string    `json:"site"`
}

// clock stamps ops emitted by one board.
type clock struct {
	site    string
	lamport atomic.Uint64
}

func newClock() *clock {
	return &clock{site: uuid.NewString()}
}

func (c *clock) stamp(op Op) Op {
	op.Lamport = c.lamport.Add(1)
	op.Site = c.site
	return op
}
