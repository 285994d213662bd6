package tetris

import "iter"

// Kind identifies one of the seven piece shapes. The zero value None marks an
// empty board cell.
type Kind uint8

const (
	None Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// AllKinds lists every piece kind in catalog order.
var AllKinds = [...]Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	return "."
}

// Matrix is a rotation state of a piece: rows of occupied flags.
type Matrix [][]bool

// Width returns the column count of the matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the row count of the matrix.
func (m Matrix) Height() int {
	return len(m)
}

// Cells yields the column and row of every occupied cell, row by row.
func (m Matrix) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range m {
			for col, filled := range m[row] {
				if !filled {
					continue
				}
				if !yield(col, row) {
					return
				}
			}
		}
	}
}

const (
	off = false
	on  = true
)

var catalog = map[Kind][]Matrix{
	I: {
		{
			{off, off, off, off},
			{on, on, on, on},
			{off, off, off, off},
			{off, off, off, off},
		},
		{
			{off, off, on, off},
			{off, off, on, off},
			{off, off, on, off},
			{off, off, on, off},
		},
	},
	J: {
		{
			{on, off, off},
			{on, on, on},
			{off, off, off},
		},
		{
			{off, on, on},
			{off, on, off},
			{off, on, off},
		},
		{
			{off, off, off},
			{on, on, on},
			{off, off, on},
		},
		{
			{off, on, off},
			{off, on, off},
			{on, on, off},
		},
	},
	L: {
		{
			{off, off, on},
			{on, on, on},
			{off, off, off},
		},
		{
			{off, on, off},
			{off, on, off},
			{off, on, on},
		},
		{
			{off, off, off},
			{on, on, on},
			{on, off, off},
		},
		{
			{on, on, off},
			{off, on, off},
			{off, on, off},
		},
	},
	O: {
		{
			{on, on},
			{on, on},
		},
	},
	S: {
		{
			{off, on, on},
			{on, on, off},
			{off, off, off},
		},
		{
			{off, on, off},
			{off, on, on},
			{off, off, on},
		},
	},
	T: {
		{
			{off, on, off},
			{on, on, on},
			{off, off, off},
		},
		{
			{off, on, off},
			{off, on, on},
			{off, on, off},
		},
		{
			{off, off, off},
			{on, on, on},
			{off, on, off},
		},
		{
			{off, on, off},
			{on, on, off},
			{off, on, off},
		},
	},
	Z: {
		{
			{on, on, off},
			{off, on, on},
			{off, off, off},
		},
		{
			{off, off, on},
			{off, on, on},
			{off, on, off},
		},
	},
}

// Rotations returns the ordered rotation states of a kind. The returned
// matrices are shared and must not be modified. None has no rotations.
func Rotations(k Kind) []Matrix {
	return catalog[k]
}
