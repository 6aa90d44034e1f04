package ops

// Tile is a rectangular block [I0:I0+Rows, J0:J0+Cols) of a matrix.
type Tile struct {
	I0, J0     int
	Rows, Cols int
}

// Tiling partitions a rows×cols matrix into nb×nb tiles in row-major tile
// order. Boundary tiles are smaller when the dimensions are not multiples of
// nb. The tiles cover every cell exactly once.
// Complexity: O(ceil(rows/nb) * ceil(cols/nb)).
func Tiling(rows, cols, nb int) []Tile {
	if rows <= 0 || cols <= 0 || nb <= 0 {
		return nil
	}
	tiles := make([]Tile, 0, ((rows+nb-1)/nb)*((cols+nb-1)/nb))
	for i0 := 0; i0 < rows; i0 += nb {
		h := min(nb, rows-i0)
		for j0 := 0; j0 < cols; j0 += nb {
			tiles = append(tiles, Tile{I0: i0, J0: j0, Rows: h, Cols: min(nb, cols-j0)})
		}
	}

	return tiles
}

// LowerTiling returns the tiles of an n×n matrix on or below the block
// diagonal (J0 <= I0). Diagonal tiles are square and include their own upper
// part; the strictly upper tiles are omitted.
func LowerTiling(n, nb int) []Tile {
	if n <= 0 || nb <= 0 {
		return nil
	}
	nt := (n + nb - 1) / nb
	tiles := make([]Tile, 0, nt*(nt+1)/2)
	for i0 := 0; i0 < n; i0 += nb {
		h := min(nb, n-i0)
		for j0 := 0; j0 <= i0; j0 += nb {
			tiles = append(tiles, Tile{I0: i0, J0: j0, Rows: h, Cols: min(nb, n-j0)})
		}
	}

	return tiles
}

// Bands splits n rows (or columns) into at most parts contiguous ranges of
// near-equal size. Each band is [Start, End); bands are disjoint and cover
// [0, n).
func Bands(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	size := (n + parts - 1) / parts
	out := make([][2]int, 0, parts)
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}

	return out
}
