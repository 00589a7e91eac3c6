package half

import "encoding/binary"

// Array is a fixed-length sequence of binary16 cells exposed through
// float64 accessors. Every Get decodes the stored 16-bit pattern and
// every Set encodes the given value down to 16 bits, so reads after
// writes observe the precision loss of the narrow format.
//
// The raw storage is wrapped rather than embedded: an Array is not a
// general-purpose slice and deliberately exposes only the accessors
// below. Out-of-range indices panic, matching fixed-size buffer
// semantics. Not safe for concurrent use.
type Array struct {
	cells []uint16
}

// NewArray allocates an Array of n zero-initialized cells.
func NewArray(n int) *Array {
	return &Array{cells: make([]uint16, n)}
}

// FromFloat64s builds an Array by encoding each value in vs.
func FromFloat64s(vs []float64) *Array {
	a := NewArray(len(vs))
	for i, v := range vs {
		a.Set(i, v)
	}
	return a
}

// Get decodes the cell at index i.
func (a *Array) Get(i int) float64 {
	return Float16(a.cells[i]).Float64()
}

// Set encodes v into the cell at index i.
func (a *Array) Set(i int, v float64) {
	a.cells[i] = FromFloat64(v).Bits()
}

// Len returns the number of cells.
func (a *Array) Len() int {
	return len(a.cells)
}

// ByteLen returns the storage size in bytes (two per cell).
func (a *Array) ByteLen() int {
	return len(a.cells) * 2
}

// Bytes serializes the underlying storage as Len()*2 bytes, one cell
// per 16-bit word in the host's native byte order.
func (a *Array) Bytes() []byte {
	buf := make([]byte, len(a.cells)*2)
	for i, c := range a.cells {
		binary.NativeEndian.PutUint16(buf[i*2:], c)
	}
	return buf
}

// Uint16s returns the underlying cell storage. Mutating the returned
// slice mutates the Array.
func (a *Array) Uint16s() []uint16 {
	return a.cells
}

// Float64s decodes every cell into a fresh slice.
func (a *Array) Float64s() []float64 {
	out := make([]float64, len(a.cells))
	for i := range a.cells {
		out[i] = a.Get(i)
	}
	return out
}
