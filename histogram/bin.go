package histogram

import (
	"math"
	"strconv"
)

// Bin is a single counting cell.
//
// The layout is a single uint32 so that a []Bin can be shared with foreign
// callers as a contiguous array (see package abi). The zero value is an
// empty bin.
type Bin struct {
	count uint32
}

// NewBin returns a bin holding count.
func NewBin(count uint32) Bin {
	return Bin{count: count}
}

// Count returns the number of samples recorded in the bin.
func (b Bin) Count() uint32 {
	return b.count
}

// Increment adds one to the bin. The count saturates at math.MaxUint32
// instead of wrapping.
func (b *Bin) Increment() {
	if b.count < math.MaxUint32 {
		b.count++
	}
}

// Add folds other into b, saturating at math.MaxUint32.
func (b *Bin) Add(other Bin) {
	sum := uint64(b.count) + uint64(other.count)
	if sum > math.MaxUint32 {
		sum = math.MaxUint32
	}
	b.count = uint32(sum)
}

func (b Bin) String() string {
	return strconv.FormatUint(uint64(b.count), 10)
}
