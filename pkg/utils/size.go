package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([KMGT]?B)?$`)

var sizeMultipliers = map[string]int64{
	"":   1,
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes formats byte counts into human-readable strings
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), byteUnits[exp])
}

// ParseSize parses size strings like "1MB", "500KB" or a bare byte count into bytes
func ParseSize(sizeStr string) (int64, error) {
	normalized := strings.TrimSpace(strings.ToUpper(sizeStr))

	matches := sizePattern.FindStringSubmatch(normalized)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	size, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	bytes := size * float64(sizeMultipliers[matches[2]])
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	if bytes >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("size out of range: %s", sizeStr)
	}

	return int64(bytes), nil
}
