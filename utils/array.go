package utils

import (
	"fmt"
)

/*
Array is an owned, row-major, N dimensional array of float64.

Fields in the solver are addressed as e.g. (species, variable, k, j, i), with the last index
varying fastest so that sweeps along x1 walk contiguous memory.
*/
type Array struct {
	shape   []int
	strides []int
	data    []float64
}

func NewArray(shape ...int) (a *Array) {
	var (
		size = 1
	)
	if len(shape) == 0 {
		panic("array must have at least one dimension")
	}
	for _, n := range shape {
		if n < 0 {
			panic(fmt.Errorf("negative array extent in shape %v", shape))
		}
		size *= n
	}
	a = &Array{
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
		data:    make([]float64, size),
	}
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		a.strides[d] = stride
		stride *= shape[d]
	}
	return
}

func (a *Array) Shape() []int { return a.shape }

func (a *Array) Rank() int { return len(a.shape) }

func (a *Array) Len() int { return len(a.data) }

// Data exposes the backing slice, row major.
func (a *Array) Data() []float64 { return a.data }

func (a *Array) Offset(idx ...int) (off int) {
	if boundsCheck {
		a.checkIndex(idx)
	}
	for d, i := range idx {
		off += i * a.strides[d]
	}
	return
}

func (a *Array) At(idx ...int) float64 {
	return a.data[a.Offset(idx...)]
}

func (a *Array) Set(val float64, idx ...int) {
	a.data[a.Offset(idx...)] = val
}

func (a *Array) Add(val float64, idx ...int) {
	a.data[a.Offset(idx...)] += val
}

func (a *Array) Fill(val float64) *Array {
	for i := range a.data {
		a.data[i] = val
	}
	return a
}

func (a *Array) Copy() (b *Array) {
	b = NewArray(a.shape...)
	copy(b.data, a.data)
	return
}

func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}
	return true
}

func (a *Array) HasNonFinite() bool {
	for _, val := range a.data {
		if !IsFinite(val) {
			return true
		}
	}
	return false
}

func (a *Array) checkIndex(idx []int) {
	if len(idx) != len(a.shape) {
		panic(fmt.Errorf("array of rank %d indexed with %d indices", len(a.shape), len(idx)))
	}
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Errorf("index %v out of range for shape %v", idx, a.shape))
		}
	}
}
