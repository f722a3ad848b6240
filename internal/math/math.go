package math

import (
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
