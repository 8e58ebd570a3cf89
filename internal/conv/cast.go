package conv

import (
	"fmt"
	"math"
)

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32 (too small)", v)
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32 (too large)", v)
	}
	return int32(v), nil
}
