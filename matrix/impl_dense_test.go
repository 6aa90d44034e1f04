// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)             // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[float64](5, -1)             // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree with the constructor.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Len(t, m.RawData(), 12) // len(data) == rows*cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)

	// the message carries method and coordinates
	require.EqualError(t, m.Set(2, 0, 1), "Dense.Set(2,0): matrix: index out of bounds")
}

// TestSetGet validates Set followed by At on every valid index.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, float64(10*i+j)+0.5))
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, float64(10*i+j)+0.5, At(t, m, i, j))
		}
	}
	require.Equal(t, []float64{0.5, 1.5, 2.5, 10.5, 11.5, 12.5}, m.RawData()) // row-major i*c+j
}

// TestIntDense checks that integer element types work end to end.
func TestIntDense(t *testing.T) {
	m, err := matrix.NewDense[int64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, -7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-7), v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	require.Equal(t, 1.0, At(t, m, 0, 0))     // original unchanged
	require.Equal(t, 3.0, At(t, clone, 0, 0)) // clone changed
}

// TestNewDenseFrom covers the copy semantics and the length check.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m := MustFrom(t, 2, 3, src...)
	src[0] = 99
	require.Equal(t, 1.0, At(t, m, 0, 0)) // data was copied

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(0, 2, []float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCreate verifies init is called exactly once per cell, in row-major order.
func TestCreate(t *testing.T) {
	var visits [][2]int
	m, err := matrix.Create(2, 3, func(i, j int) float64 {
		visits = append(visits, [2]int{i, j})
		return float64(i - j)
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visits)
	require.Equal(t, -2.0, At(t, m, 0, 2))
	require.Equal(t, 1.0, At(t, m, 1, 0))

	_, err = matrix.Create(0, 3, func(int, int) float64 { return 0 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestValidateNaNInf checks that the numeric policy is opt-in and is carried by Clone.
func TestValidateNaNInf(t *testing.T) {
	loose := MustDense(t, 1, 1)
	require.NoError(t, loose.Set(0, 0, math.NaN())) // default policy accepts NaN

	strict, err := matrix.NewDense[float64](1, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Clone().Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 0, 1))

	_, err = matrix.Create(1, 1, func(int, int) float64 { return math.Inf(1) }, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewDenseFrom(1, 1, []float64{math.NaN()}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// last writer wins
	m, err := matrix.NewDense[float64](1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

// TestString pins the human-readable layout.
func TestString(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4.5)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	require.Equal(t, m.String(), matrix.Format[float64](m))
	require.Equal(t, "[1, 3]\n[2, 4.5]\n", matrix.Format[float64](matrix.NewTranspose[float64](m)))
	require.Equal(t, "<nil>", matrix.Format[float64](nil))
}
