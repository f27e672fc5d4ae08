package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointNeighbors(t *testing.T) {
	t.Run("corner has three neighbors in row-major order", func(t *testing.T) {
		got := Point{0, 0}.Neighbors()
		require.Equal(t, []Point{{0, 1}, {1, 0}, {1, 1}}, got)
	})

	t.Run("edge has five neighbors", func(t *testing.T) {
		got := Point{0, 2}.Neighbors()
		require.Equal(t, []Point{{0, 1}, {0, 3}, {1, 1}, {1, 2}, {1, 3}}, got)
	})

	t.Run("interior cell has eight neighbors", func(t *testing.T) {
		got := Point{2, 2}.Neighbors()
		require.Equal(t, []Point{
			{1, 1}, {1, 2}, {1, 3},
			{2, 1}, {2, 3},
			{3, 1}, {3, 2}, {3, 3},
		}, got)
	})

	t.Run("a cell is never its own neighbor", func(t *testing.T) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				p := Point{r, c}
				require.NotContains(t, p.Neighbors(), p)
			}
		}
	})
}

func TestPointDistance(t *testing.T) {
	t.Run("adjacent cells are distance one", func(t *testing.T) {
		center := Point{2, 2}
		for _, n := range center.Neighbors() {
			require.Equal(t, 1, center.Distance(n))
		}
	})

	t.Run("distance is the Chebyshev metric", func(t *testing.T) {
		require.Equal(t, 4, Point{0, 0}.Distance(Point{4, 4}))
		require.Equal(t, 4, Point{0, 4}.Distance(Point{4, 0}))
		require.Equal(t, 2, Point{1, 1}.Distance(Point{3, 2}))
		require.Equal(t, 0, Point{2, 2}.Distance(Point{2, 2}))
	})
}

func TestBoardBuild(t *testing.T) {
	t.Run("building raises the tower one level at a time then domes", func(t *testing.T) {
		var b Board
		p := Point{2, 2}

		for want := 1; want <= MaxHeight; want++ {
			b.Build(p)
			require.Equal(t, want, b.Height(p))
			require.False(t, b.Capped(p))
		}

		b.Build(p)
		require.Equal(t, MaxHeight, b.Height(p), "capping must not change the height")
		require.True(t, b.Capped(p))
	})

	t.Run("building on a dome panics", func(t *testing.T) {
		var b Board
		p := Point{1, 3}
		for i := 0; i < 4; i++ {
			b.Build(p)
		}
		require.Panics(t, func() { b.Build(p) })
	})

	t.Run("building leaves other cells untouched", func(t *testing.T) {
		var b Board
		b.Build(Point{0, 0})
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if (Point{r, c}) == (Point{0, 0}) {
					continue
				}
				require.Equal(t, 0, b.Height(Point{r, c}))
			}
		}
	})
}
