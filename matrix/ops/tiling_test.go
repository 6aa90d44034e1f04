package ops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix/ops"
)

// cover counts how often each cell of a rows×cols grid is covered by tiles.
func cover(rows, cols int, tiles []ops.Tile) [][]int {
	seen := make([][]int, rows)
	for i := range seen {
		seen[i] = make([]int, cols)
	}
	for _, t := range tiles {
		for i := t.I0; i < t.I0+t.Rows; i++ {
			for j := t.J0; j < t.J0+t.Cols; j++ {
				seen[i][j]++
			}
		}
	}

	return seen
}

func TestTilingPartitionsExactly(t *testing.T) {
	for _, s := range []struct{ rows, cols, nb int }{
		{10, 10, 4}, {7, 3, 3}, {1, 1, 8}, {64, 65, 16}, {5, 9, 1},
	} {
		tiles := ops.Tiling(s.rows, s.cols, s.nb)
		for i, row := range cover(s.rows, s.cols, tiles) {
			for j, n := range row {
				require.Equalf(t, 1, n, "cell (%d,%d) of %dx%d nb=%d", i, j, s.rows, s.cols, s.nb)
			}
		}
		for _, tile := range tiles {
			require.LessOrEqual(t, tile.Rows, s.nb)
			require.LessOrEqual(t, tile.Cols, s.nb)
		}
	}
	require.Nil(t, ops.Tiling(0, 3, 2))
}

func TestTilingOrder(t *testing.T) {
	want := []ops.Tile{
		{I0: 0, J0: 0, Rows: 4, Cols: 4}, {I0: 0, J0: 4, Rows: 4, Cols: 2},
		{I0: 4, J0: 0, Rows: 1, Cols: 4}, {I0: 4, J0: 4, Rows: 1, Cols: 2},
	}
	if diff := cmp.Diff(want, ops.Tiling(5, 6, 4)); diff != "" {
		t.Fatalf("Tiling(5,6,4) mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerTiling(t *testing.T) {
	const n, nb = 10, 4
	tiles := ops.LowerTiling(n, nb)
	require.Len(t, tiles, 6) // 3 block rows: 1 + 2 + 3

	seen := cover(n, n, tiles)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			require.Equalf(t, 1, seen[i][j], "lower cell (%d,%d)", i, j)
		}
	}
	for _, tile := range tiles {
		require.LessOrEqual(t, tile.J0, tile.I0)
	}
}

func TestBands(t *testing.T) {
	if diff := cmp.Diff([][2]int{{0, 4}, {4, 8}, {8, 10}}, ops.Bands(10, 3)); diff != "" {
		t.Fatalf("Bands(10,3) mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, ops.Bands(2, 8), 2) // never more bands than items
	require.Len(t, ops.Bands(5, 0), 1)
	require.Nil(t, ops.Bands(0, 4))
}

func TestBlockSizeOptions(t *testing.T) {
	require.Contains(t, []int{ops.BlockSizeAVX512, ops.BlockSizeAVX2, ops.BlockSizeNEON, ops.BlockSizeFallback},
		ops.DefaultBlockSize())
	require.Equal(t, ops.DefaultBlockSize(), ops.Resolve().BlockSize)
	require.Equal(t, 7, ops.Resolve(ops.WithBlockSize(3), ops.WithBlockSize(7)).BlockSize)
	require.PanicsWithValue(t, "ops: WithBlockSize: block size must be > 0", func() { ops.WithBlockSize(0) })
}
