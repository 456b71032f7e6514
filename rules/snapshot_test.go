package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCellAt(t *testing.T) {
	snap := Snapshot{
		Size:   4,
		Snake:  []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		Food:   Point{X: 3, Y: 0},
		Status: GameStatusRunning,
	}
	require.Equal(t, CellHead, snap.CellAt(Point{X: 1, Y: 1}))
	require.Equal(t, CellBody, snap.CellAt(Point{X: 1, Y: 2}))
	require.Equal(t, CellBody, snap.CellAt(Point{X: 2, Y: 2}))
	require.Equal(t, CellFood, snap.CellAt(Point{X: 3, Y: 0}))
	require.Equal(t, CellEmpty, snap.CellAt(Point{X: 0, Y: 0}))
}

func TestSnapshotFoodWinsOverHead(t *testing.T) {
	snap := Snapshot{
		Size:   4,
		Snake:  []Point{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:   Point{X: 1, Y: 1},
		Status: GameStatusRunning,
	}
	require.Equal(t, CellFood, snap.CellAt(Point{X: 1, Y: 1}))

	snap.Status = GameStatusWon
	require.False(t, snap.HasFood())
	require.Equal(t, CellHead, snap.CellAt(Point{X: 1, Y: 1}))
}

func TestSnapshotGrid(t *testing.T) {
	st := NewState(DefaultSettings(), 0)
	snap := st.Snapshot(12)
	grid := snap.Grid()
	require.Len(t, grid, 12)
	counts := map[CellKind]int{}
	for y := range grid {
		require.Len(t, grid[y], 12)
		for _, k := range grid[y] {
			counts[k]++
		}
	}
	require.Equal(t, 1, counts[CellHead])
	require.Equal(t, 1, counts[CellFood])
	require.Equal(t, 0, counts[CellBody])
	require.Equal(t, CellHead, grid[6][6])
	require.Equal(t, CellFood, grid[3][3])
}

func TestSnapshotIsACopy(t *testing.T) {
	st := NewState(DefaultSettings(), 0)
	snap := st.Snapshot(12)
	st.Snake[0] = Point{X: 0, Y: 0}
	require.Equal(t, Point{X: 6, Y: 6}, snap.Snake[0])
}
