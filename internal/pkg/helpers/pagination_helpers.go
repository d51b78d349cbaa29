package helpers

import (
	"math"
	"strconv"
)

const (
	// DefaultPageSize is the catalog's amount of courses per page
	DefaultPageSize = 12
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// ParsePage parses a 1-based page number from a path parameter.
// Anything that is not a positive base-10 integer is rejected.
func ParsePage(raw string) (int, bool) {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// ParseID parses a positive integer identifier from a path parameter.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
// ok is false when the offset does not fit in a signed 64-bit integer; such a
// page lies past the end of any table.
func CalculateOffsetLimit(page, size int) (offset uint64, limit uint64, ok bool) {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	if page < 1 {
		page = DefaultPage
	}

	if uint64(page-1) > math.MaxInt64/uint64(size) {
		return 0, uint64(size), false
	}

	// page p covers rows [(p-1)*size, p*size)
	offset = uint64(page-1) * uint64(size)
	return offset, uint64(size), true
}
