package helpers

import (
	"sort"
	"strings"
	"unicode"
)

// tsqueryOperators are characters with meaning inside to_tsquery input.
const tsqueryOperators = "&|!():*<>'\\"

// BuildTextQuery turns a raw search string such as "intro+python" into the
// boolean text query "intro & python". Terms are separated by literal '+'
// characters or whitespace (a '+' in a query string arrives decoded as a space).
// Operator characters are dropped from each term so the result always parses.
// An empty string is returned when no usable term remains.
func BuildTextQuery(raw string) string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '+' || unicode.IsSpace(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		term := strings.Map(func(r rune) rune {
			if strings.ContainsRune(tsqueryOperators, r) {
				return -1
			}
			return r
		}, f)
		if term != "" {
			terms = append(terms, term)
		}
	}

	return strings.Join(terms, " & ")
}

// DistinctSorted returns the sorted set of values, without duplicates.
// The result is never nil so it serializes as [] rather than null.
func DistinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
