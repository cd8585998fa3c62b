package utils

import (
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ParallelDegree resolves a user process limit, 0 meaning one worker per CPU.
func ParallelDegree(ProcLimit int) (np int) {
	if ProcLimit > 0 {
		np = ProcLimit
	} else {
		np = runtime.NumCPU()
	}
	return
}

/*
ParallelFor partitions [0, maxIndex) into at most ParallelDegree contiguous buckets and runs
body once per non-empty bucket in its own go routine, returning after all buckets finish.

Callers must keep writes disjoint between buckets; body receives the bucket number so per
worker accumulators can be indexed without locking.
*/
func ParallelFor(ParallelDegree, maxIndex int, body func(bn, kMin, kMax int)) {
	var (
		wg sync.WaitGroup
	)
	if maxIndex <= 0 {
		return
	}
	if ParallelDegree > maxIndex {
		ParallelDegree = maxIndex
	}
	if ParallelDegree <= 1 {
		body(0, 0, maxIndex)
		return
	}
	pm := NewPartitionMap(ParallelDegree, maxIndex)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			body(np, kMin, kMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
}

// ParallelForBox is ParallelFor over every index tuple of a Box.
func ParallelForBox(ParallelDegree int, b Box, body func(bn int, idx [4]int)) {
	ParallelFor(ParallelDegree, b.Size(), func(bn, kMin, kMax int) {
		for n := kMin; n < kMax; n++ {
			body(bn, b.Unflatten(n))
		}
	})
}
