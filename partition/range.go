package partition

import (
	"fmt"

	"github.com/segmentio/linkedlist/compare"
	"golang.org/x/exp/constraints"
)

// Range is an immutable interval of keys [Min, Max], bounds included, which
// routes elements to partitions.
//
// The zero-value is not a valid range, ranges must be constructed by calling
// NewRange or NewOrderedRange.
type Range[K any] struct {
	min K
	max K
	cmp func(K, K) int
}

// NewRange constructs a range of keys ordered by cmp. The method returns
// ErrInvalidRange unless min is strictly less than max.
func NewRange[K any](min, max K, cmp func(K, K) int) (Range[K], error) {
	if cmp(min, max) >= 0 {
		return Range[K]{}, fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidRange, min, max)
	}
	return Range[K]{min: min, max: max, cmp: cmp}, nil
}

// NewOrderedRange is like NewRange for key types which have a natural order.
func NewOrderedRange[K constraints.Ordered](min, max K) (Range[K], error) {
	return NewRange(min, max, compare.Function[K])
}

// Min returns the lower bound of the range.
func (r Range[K]) Min() K { return r.min }

// Max returns the upper bound of the range.
func (r Range[K]) Max() K { return r.max }

// Compare returns -1 if key is before the range, +1 if it is after, and 0 if
// the range contains it.
func (r Range[K]) Compare(key K) int {
	switch {
	case r.cmp(key, r.min) < 0:
		return -1
	case r.cmp(key, r.max) > 0:
		return +1
	default:
		return 0
	}
}

// Contains returns true if key is within the bounds of the range.
func (r Range[K]) Contains(key K) bool { return r.Compare(key) == 0 }

func (r Range[K]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}
