package ypath

// IntMatrix is a small dense row-major integer matrix; it carries the
// linear combinations expressing a/b-cycles in terms of c-cycles.
type IntMatrix struct {
	rows, cols int
	data       []int
}

// NewIntMatrix returns a zero rows×cols matrix.
func NewIntMatrix(rows, cols int) *IntMatrix {
	return &IntMatrix{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// Rows returns the row count.
func (m *IntMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *IntMatrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *IntMatrix) At(i, j int) int { return m.data[i*m.cols+j] }

// Set writes the entry at row i, column j.
func (m *IntMatrix) Set(i, j, v int) { m.data[i*m.cols+j] = v }

// Row returns a copy of row i.
func (m *IntMatrix) Row(i int) []int {
	out := make([]int, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out
}

// IsZeroCol reports whether column j has no nonzero entry. A matrix
// with zero rows has only zero columns.
func (m *IntMatrix) IsZeroCol(j int) bool {
	for i := 0; i < m.rows; i++ {
		if m.At(i, j) != 0 {
			return false
		}
	}

	return true
}

// KeepCols returns a copy of m restricted to the given columns, in the
// given order.
func (m *IntMatrix) KeepCols(idx []int) *IntMatrix {
	out := NewIntMatrix(m.rows, len(idx))
	for i := 0; i < m.rows; i++ {
		for k, j := range idx {
			out.Set(i, k, m.At(i, j))
		}
	}

	return out
}
