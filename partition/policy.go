package partition

// Policy is the interface implemented by types deciding the ranges of the
// partitions of a PartitionedList.
type Policy[K any] interface {
	// Returns the maximum number of partitions that the policy expects, or
	// zero if it does not declare any. The limit is advisory, lists never
	// refuse to create partitions because of it.
	MaxPartitions() int

	// Returns a new range containing key. partitionCount is the number of
	// partitions which already exist, so implementations may return an
	// error when they would exceed a limit.
	//
	// The range must not overlap with any range previously returned for the
	// same list, lists do not verify it.
	NewRange(partitionCount int, key K) (Range[K], error)
}

// PolicyFunc is an adapter allowing the use of ordinary functions as partition
// policies. It declares no maximum number of partitions.
type PolicyFunc[K any] func(partitionCount int, key K) (Range[K], error)

func (f PolicyFunc[K]) MaxPartitions() int { return 0 }

func (f PolicyFunc[K]) NewRange(partitionCount int, key K) (Range[K], error) {
	return f(partitionCount, key)
}
