package histogram

import "fmt"

// Kind tags a BucketIndex.
type Kind uint8

const (
	// Underflow marks samples below the left bound.
	Underflow Kind = iota
	// Bucket marks samples inside [left, right).
	Bucket
	// Overflow marks samples at or above the right bound.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case Underflow:
		return "underflow"
	case Bucket:
		return "bucket"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// BucketIndex is the result of classifying a sample.
type BucketIndex struct {
	kind Kind
	pos  int
}

// UnderflowIndex returns the index for samples below the left bound.
func UnderflowIndex() BucketIndex { return BucketIndex{kind: Underflow} }

// OverflowIndex returns the index for samples at or above the right bound.
func OverflowIndex() BucketIndex { return BucketIndex{kind: Overflow} }

// BucketAtIndex returns the index of the bucket at position pos.
func BucketAtIndex(pos int) BucketIndex { return BucketIndex{kind: Bucket, pos: pos} }

// Kind reports which cell the index selects.
func (i BucketIndex) Kind() Kind { return i.kind }

// Position returns the bucket position. ok is false for underflow and overflow.
func (i BucketIndex) Position() (pos int, ok bool) {
	if i.kind != Bucket {
		return 0, false
	}
	return i.pos, true
}

func (i BucketIndex) String() string {
	if i.kind == Bucket {
		return fmt.Sprintf("bucket(%d)", i.pos)
	}
	return i.kind.String()
}
