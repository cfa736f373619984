package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/geom"
)

func line(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: 10, Y: float64(i) * 5}
	}
	return pts
}

func TestBoard_AppendKeepsOrder(t *testing.T) {
	b := NewBoard()
	s1 := NewStroke(line(3), "black", 6, false)
	s2 := NewStroke(line(4), "red", 2, false)
	b.Append(s1)
	b.Append(s2)

	require.Equal(t, 2, b.Len())
	es := b.Entities()
	assert.Same(t, s1, es[0])
	assert.Same(t, s2, es[1])
	assert.Equal(t, 1, b.Index(s2.ID))
	assert.Equal(t, -1, b.Index(uuid.New()))
}

func TestBoard_ReplaceTargetsStrokeSlot(t *testing.T) {
	b := NewBoard()
	s1 := NewStroke(line(3), "black", 6, false)
	s2 := NewStroke(line(12), "black", 6, false)
	s3 := NewStroke(line(5), "black", 6, false)
	b.Append(s1)
	b.Append(s2)
	b.Append(s3)

	g := NewGlyph(s2, 1, 0.5)
	require.True(t, b.Replace(s2.ID, g))

	es := b.Entities()
	require.Len(t, es, 3)
	assert.Same(t, s1, es[0])
	assert.Same(t, g, es[1])
	assert.Same(t, s3, es[2])
	assert.Equal(t, s2.Bounds(), g.Box)
	assert.Equal(t, s2.ID, g.StrokeID)
}

func TestBoard_ReplaceMissingIsNoop(t *testing.T) {
	b := NewBoard()
	s := NewStroke(line(12), "black", 6, false)
	b.Append(s)
	_, ok := b.Undo()
	require.True(t, ok)

	var ops []Op
	b.OnOp(func(op Op) { ops = append(ops, op) })

	assert.False(t, b.Replace(s.ID, NewGlyph(s, 1, 0)))
	assert.Zero(t, b.Len())
	assert.Empty(t, ops)
}

func TestBoard_ReplaceTwiceIsNoop(t *testing.T) {
	b := NewBoard()
	s := NewStroke(line(12), "black", 6, false)
	b.Append(s)
	g := NewGlyph(s, 1, 0)
	require.True(t, b.Replace(s.ID, g))
	assert.False(t, b.Replace(g.ID, NewGlyph(s, 7, 0)))
	assert.Same(t, g, b.Entities()[0])
}

func TestBoard_UndoAndClear(t *testing.T) {
	b := NewBoard()
	_, ok := b.Undo()
	assert.False(t, ok)

	s1 := NewStroke(line(3), "black", 6, false)
	s2 := NewStroke(line(3), "black", 6, false)
	b.Append(s1)
	b.Append(s2)

	e, ok := b.Undo()
	require.True(t, ok)
	assert.Same(t, s2, e)
	assert.Equal(t, 1, b.Len())

	b.Clear()
	assert.Zero(t, b.Len())
}

func TestBoard_EmitsOps(t *testing.T) {
	b := NewBoard()
	var ops []Op
	b.OnOp(func(op Op) { ops = append(ops, op) })

	s := NewStroke(line(12), "black", 6, false)
	b.Append(s)
	b.Replace(s.ID, NewGlyph(s, 1, 0))
	b.Undo()
	b.Load([]Entity{s})
	b.Clear()

	require.Len(t, ops, 5)
	types := []OpType{OpInsert, OpReplace, OpRemove, OpLoad, OpClear}
	for i, op := range ops {
		assert.Equal(t, types[i], op.Type)
		assert.Equal(t, uint64(i+1), op.Lamport)
		assert.Equal(t, b.Site(), op.Site)
	}
	assert.Equal(t, s.ID, ops[1].Target)
	assert.Equal(t, KindGlyph, ops[1].Entity.Kind)
	assert.Len(t, ops[3].Entities, 1)
}

func TestBoard_EntitiesIsCopy(t *testing.T) {
	b := NewBoard()
	b.Append(NewStroke(line(3), "black", 6, false))
	es := b.Entities()
	es[0] = nil
	assert.NotNil(t, b.Entities()[0])
}

func TestBoard_Snapshot(t *testing.T) {
	b := NewBoard()
	s := NewStroke(line(3), "black", 6, false)
	b.Append(s)
	snap := b.Snapshot()
	assert.Equal(t, OpLoad, snap.Type)
	require.Len(t, snap.Entities, 1)
	assert.Equal(t, s.ID, snap.Entities[0].Stroke.ID)
}

func ids(es []Entity) []uuid.UUID {
	out := make([]uuid.UUID, len(es))
	for i, e := range es {
		out[i] = e.EntityID()
	}
	return out
}

func TestBoard_ApplyMirrorsAnotherBoard(t *testing.T) {
	src := NewBoard()
	dst := NewBoard()
	var ops []Op
	src.OnOp(func(op Op) { ops = append(ops, op) })

	s1 := NewStroke(line(12), "black", 6, false)
	s2 := NewStroke(line(4), "red", 2, false)
	src.Append(s1)
	src.Append(s2)
	src.Replace(s1.ID, NewGlyph(s1, 1, 3))
	src.Append(NewStroke(line(5), "blue", 2, false))
	src.Undo()

	for _, op := range ops {
		require.NoError(t, dst.Apply(op))
	}
	assert.Equal(t, ids(src.Entities()), ids(dst.Entities()))
	_, isGlyph := dst.Entities()[0].(*Glyph)
	assert.True(t, isGlyph)
}

func TestBoard_ApplyIsIdempotentAfterSnapshot(t *testing.T) {
	src := NewBoard()
	var ops []Op
	src.OnOp(func(op Op) { ops = append(ops, op) })
	s1 := NewStroke(line(12), "black", 6, false)
	src.Append(s1)
	src.Replace(s1.ID, NewGlyph(s1, 7, 2))

	dst := NewBoard()
	snap := src.Snapshot()
	assert.Equal(t, ops[len(ops)-1].Lamport, snap.Lamport)
	require.NoError(t, dst.Apply(snap))

	// The replace is already part of the snapshot.
	require.NoError(t, dst.Apply(ops[1]))
	require.NoError(t, dst.Apply(Op{Type: OpRemove, Target: uuid.New()}))
	assert.Equal(t, ids(src.Entities()), ids(dst.Entities()))

	require.NoError(t, dst.Apply(Op{Type: OpClear}))
	assert.Equal(t, 0, dst.Len())
	assert.Error(t, dst.Apply(Op{Type: "bogus"}))
	assert.Error(t, dst.Apply(Op{Type: OpInsert}))
}

func TestBoard_ListenersRegisteredDuringEmit(t *testing.T) {
	b := NewBoard()
	var first, late []OpType
	b.OnOp(func(op Op) {
		first = append(first, op.Type)
		if len(first) == 1 {
			b.OnOp(func(op Op) { late = append(late, op.Type) })
		}
	})

	b.Append(NewStroke(line(3), "black", 6, false))
	b.Clear()

	assert.Equal(t, []OpType{OpInsert, OpClear}, first)
	assert.Equal(t, []OpType{OpClear}, late)
}
