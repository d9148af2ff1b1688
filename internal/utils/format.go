package utils

import (
	"math"
	"strconv"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n with a 1024 base and at most two decimals, e.g.
// "1.5KB". Values beyond TB stay in TB.
func FormatBytes(n uint64) string {
	if n == 0 {
		return "0B"
	}

	value := float64(n)
	i := 0
	for value >= 1024 && i < len(byteUnits)-1 {
		value /= 1024
		i++
	}
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + byteUnits[i]
}

// DefaultTruncateLength is the display width used for long titles.
const DefaultTruncateLength = 40

// Truncate shortens s to limit runes, replacing the tail with "...".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		limit = DefaultTruncateLength
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
