package tool

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/milieu/selection"
	"github.com/oomph-ac/milieu/world"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	revealed []cube.Pos
	placed   []cube.Pos
}

func (r *recorder) Reveal(pos cube.Pos) (*world.Block, bool) {
	r.revealed = append(r.revealed, pos)
	return nil, false
}

func (r *recorder) Put(pos cube.Pos, _ *world.Block) {
	r.placed = append(r.placed, pos)
}

func target(solid, adjacent cube.Pos) selection.Target {
	return selection.Target{Solid: &solid, Adjacent: &adjacent}
}

func TestMiningCooldown(t *testing.T) {
	tl := New(0.1)
	rec := &recorder{}
	tg := target(cube.Pos{0, 0, 0}, cube.Pos{0, 1, 0})

	tl.Press(StateMining)
	act, ok := tl.Tick(0.016, tg, rec)
	require.True(t, ok, "the first edit happens immediately")
	require.Equal(t, Action{State: StateMining, Pos: cube.Pos{0, 0, 0}}, act)

	for range 5 {
		tl.Tick(0.016, tg, rec)
	}
	require.Len(t, rec.revealed, 1, "cooldown has not elapsed yet")

	tl.Tick(0.016, tg, rec)
	require.Len(t, rec.revealed, 2)
}

func TestPlacing(t *testing.T) {
	tl := New(0.1)
	rec := &recorder{}
	tl.Press(StatePlacing)
	_, ok := tl.Tick(0.016, target(cube.Pos{0, 0, 0}, cube.Pos{0, 1, 0}), rec)
	require.True(t, ok)
	require.Equal(t, []cube.Pos{{0, 1, 0}}, rec.placed)
	require.Empty(t, rec.revealed)
}

func TestPlacingBlocked(t *testing.T) {
	tl := New(0.1)
	tl.Blocked = func(pos cube.Pos) bool { return pos == cube.Pos{0, 1, 0} }
	rec := &recorder{}
	tl.Press(StatePlacing)
	_, ok := tl.Tick(0.016, target(cube.Pos{0, 0, 0}, cube.Pos{0, 1, 0}), rec)
	require.False(t, ok)
	require.Empty(t, rec.placed)
}

func TestIdleAndNoTarget(t *testing.T) {
	tl := New(0.1)
	rec := &recorder{}
	_, ok := tl.Tick(1, target(cube.Pos{}, cube.Pos{}), rec)
	require.False(t, ok)

	tl.Press(StateMining)
	_, ok = tl.Tick(0.016, selection.Target{}, rec)
	require.False(t, ok)

	tl.Release()
	require.Equal(t, StateIdle, tl.State())
	require.Empty(t, rec.revealed)
}
