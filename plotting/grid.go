// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"

	"github.com/go-a2a/plotmcp/types"
)

// Grid is a [plotter.GridXYZ] over a matrix whose rows run along y and whose
// columns run along x.
type Grid struct {
	Data mat.Matrix

	// Xs and Ys hold the cell centers. Nil means the column or row index.
	Xs, Ys []float64

	// TopDown draws row 0 at the top instead of at the bottom.
	TopDown bool
}

var _ plotter.GridXYZ = (*Grid)(nil)

// Dims implements [plotter.GridXYZ].
func (g *Grid) Dims() (c, r int) {
	r, c = g.Data.Dims()
	return c, r
}

// Z implements [plotter.GridXYZ].
func (g *Grid) Z(c, r int) float64 {
	if g.TopDown {
		rows, _ := g.Data.Dims()
		r = rows - 1 - r
	}
	return g.Data.At(r, c)
}

// X implements [plotter.GridXYZ].
func (g *Grid) X(c int) float64 {
	if g.Xs == nil {
		return float64(c)
	}
	return g.Xs[c]
}

// Y implements [plotter.GridXYZ].
func (g *Grid) Y(r int) float64 {
	if g.Ys == nil {
		return float64(r)
	}
	return g.Ys[r]
}

// Range returns the smallest and the largest finite value of m.
// Both are NaN if m holds no finite value.
func Range(m mat.Matrix) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	r, c := m.Dims()
	for i := range r {
		for j := range c {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// SquareMatrix reshapes vs row by row into an n×n matrix. The length of vs
// must be a non-zero perfect square.
func SquareMatrix(vs []float64) (*mat.Dense, error) {
	n := int(math.Round(math.Sqrt(float64(len(vs)))))
	if len(vs) == 0 || n*n != len(vs) {
		return nil, types.InvalidArgument("", "a flat list of %d values cannot form a square matrix", len(vs))
	}
	return mat.NewDense(n, n, append([]float64(nil), vs...)), nil
}

// ToMatrix converts seq into a matrix. A nested seq must be rectangular; a flat
// seq is reshaped with [SquareMatrix].
func ToMatrix(argument string, seq types.Sequence) (*mat.Dense, error) {
	if len(seq) == 0 {
		return nil, types.InvalidArgument(argument, "no values given")
	}
	if !seq.IsNested() {
		vs, err := seq.Floats()
		if err != nil {
			return nil, types.InvalidArgument(argument, "%v", err)
		}
		m, err := SquareMatrix(vs)
		if err != nil {
			return nil, types.InvalidArgument(argument, "a flat list of %d values cannot form a square matrix; pass a list of rows instead", len(vs))
		}
		return m, nil
	}

	rows, err := seq.Rows()
	if err != nil {
		return nil, types.InvalidArgument(argument, "%v", err)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, types.InvalidArgument(argument, "rows must not be empty")
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, types.InvalidArgument(argument, "row %d has %d values, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Upsample returns g refined by factor along both axes with bilinear
// interpolation. Cell centers are interpolated linearly.
func Upsample(g *Grid, factor int) *Grid {
	c, r := g.Dims()
	if factor <= 1 || c < 2 || r < 2 {
		return g
	}

	nc, nr := (c-1)*factor+1, (r-1)*factor+1
	xs := refine(g.X, c, factor)
	ys := refine(g.Y, r, factor)

	out := mat.NewDense(nr, nc, nil)
	for i := range nr {
		r0 := min(i/factor, r-2)
		ty := float64(i-r0*factor) / float64(factor)
		for j := range nc {
			c0 := min(j/factor, c-2)
			tx := float64(j-c0*factor) / float64(factor)

			z00, z01 := g.Z(c0, r0), g.Z(c0+1, r0)
			z10, z11 := g.Z(c0, r0+1), g.Z(c0+1, r0+1)
			top := z00 + (z01-z00)*tx
			bottom := z10 + (z11-z10)*tx
			out.Set(i, j, top+(bottom-top)*ty)
		}
	}
	return &Grid{Data: out, Xs: xs, Ys: ys}
}

func refine(at func(int) float64, n, factor int) []float64 {
	out := make([]float64, 0, (n-1)*factor+1)
	for i := range n - 1 {
		a, b := at(i), at(i+1)
		for k := range factor {
			out = append(out, a+(b-a)*float64(k)/float64(factor))
		}
	}
	return append(out, at(n-1))
}

// Centers returns the midpoints of consecutive edges.
func Centers(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = (edges[i] + edges[i+1]) / 2
	}
	return out
}

// Levels returns n values evenly spaced strictly inside [lo, hi].
func Levels(lo, hi float64, n int) []float64 {
	lo, hi = span(lo, hi)
	out := make([]float64, n+2)
	floats.Span(out, lo, hi)
	return out[1 : n+1]
}

// DistinctInOrder returns the distinct values of vs in order of first appearance.
func DistinctInOrder(vs []float64) []float64 {
	seen := make(map[float64]bool, len(vs))
	var out []float64
	for _, v := range vs {
		if math.IsNaN(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Axis resolves the coordinates of one axis of a rows×cols grid.
//
// n is the number of cells along the axis. A flat seq of length n is used as
// is, and so is one of length n+1 when edges is true. A flat seq of length
// rows×cols is a long-format column and reduces to its distinct values. A
// nested seq is a mesh: x takes its first row and y its first column.
func Axis(argument string, seq types.Sequence, n, rows, cols int, isX, edges bool) ([]float64, error) {
	if len(seq) == 0 {
		return nil, types.InvalidArgument(argument, "no values given")
	}

	var vs []float64
	if seq.IsNested() {
		mesh, err := seq.Rows()
		if err != nil {
			return nil, types.InvalidArgument(argument, "%v", err)
		}
		if isX {
			vs = mesh[0]
		} else {
			vs = make([]float64, 0, len(mesh))
			for _, row := range mesh {
				if len(row) == 0 {
					return nil, types.InvalidArgument(argument, "mesh rows must not be empty")
				}
				vs = append(vs, row[0])
			}
		}
	} else {
		var err error
		if vs, err = seq.Floats(); err != nil {
			return nil, types.InvalidArgument(argument, "%v", err)
		}
	}

	switch {
	case len(vs) == n, edges && len(vs) == n+1:
		return vs, nil
	case len(vs) == rows*cols && !seq.IsNested():
		if d := DistinctInOrder(vs); len(d) == n {
			return d, nil
		}
	}
	if edges {
		return nil, types.InvalidArgument(argument, "has %d values, expected %d centers or %d edges", len(vs), n, n+1)
	}
	return nil, types.InvalidArgument(argument, "has %d values, expected %d", len(vs), n)
}
