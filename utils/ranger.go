package utils

/*
Box is a half open range of four indices, typically (species, k, j, i).

It is flattened with the last index varying fastest, so a PartitionMap over [0, Size()) hands
each worker a contiguous run of cells along x1.
*/
type Box struct {
	Lo, Hi [4]int
}

func NewBox(lo, hi [4]int) Box {
	return Box{Lo: lo, Hi: hi}
}

func (b Box) Extent(d int) (n int) {
	if n = b.Hi[d] - b.Lo[d]; n < 0 {
		n = 0
	}
	return
}

func (b Box) Size() (size int) {
	size = 1
	for d := 0; d < 4; d++ {
		size *= b.Extent(d)
	}
	return
}

// Unflatten converts a flat position in [0, Size()) to the absolute index tuple.
func (b Box) Unflatten(n int) (idx [4]int) {
	for d := 3; d >= 0; d-- {
		ext := b.Extent(d)
		idx[d] = b.Lo[d] + n%ext
		n /= ext
	}
	return
}
