// Package menu implements the settings ⇄ YAML transcoder for the
// DeluxeMenus menu schema: a deterministic serializer, a legacy-tolerant
// deserializer, and the requirement and slot-range sub-codecs they share.
//
// Both directions are pure: Generate never mutates its input and Parse
// returns a fresh object graph. Key names and nesting shapes follow the
// plugin's schema verbatim, since a third-party parser consumes the output.
package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CompactSlots compacts a set of slot indices into the minimal ordered
// token sequence the schema uses: runs of two or more consecutive slots
// become "start-end" strings, lone slots stay bare integers. Input order
// and duplicates are irrelevant; output is ascending. Empty input yields an
// empty sequence.
func CompactSlots(slots []int) []any {
	if len(slots) == 0 {
		return nil
	}

	sorted := make([]int, 0, len(slots))
	seen := make(map[int]bool, len(slots))
	for _, s := range slots {
		if !seen[s] {
			seen[s] = true
			sorted = append(sorted, s)
		}
	}
	sort.Ints(sorted)

	var tokens []any
	flush := func(start, end int) {
		if start == end {
			tokens = append(tokens, start)
		} else {
			tokens = append(tokens, fmt.Sprintf("%d-%d", start, end))
		}
	}

	start := sorted[0]
	prev := sorted[0]
	for _, cur := range sorted[1:] {
		if cur != prev+1 {
			flush(start, prev)
			start = cur
		}
		prev = cur
	}
	flush(start, prev)

	return tokens
}

// ExpandSlots expands any of the serialized slot encodings back into a
// sorted, deduplicated slice of slot indices. Accepted inputs, matching the
// shapes found in real configs:
//
//   - a bare integer
//   - a "start-end" range string (inclusive)
//   - a comma-separated string mixing bare and ranged tokens ("1,2,4-6")
//   - a list of any of the above
//
// Invalid tokens and malformed ranges (start > end, non-numeric bounds) are
// skipped, never fatal.
func ExpandSlots(value any) []int {
	seen := make(map[int]bool)

	var addToken func(v any)
	addToken = func(v any) {
		switch t := v.(type) {
		case int:
			seen[t] = true
		case int64:
			seen[int(t)] = true
		case float64:
			seen[int(t)] = true
		case string:
			for _, part := range strings.Split(t, ",") {
				expandStringToken(part, seen)
			}
		case []any:
			for _, item := range t {
				addToken(item)
			}
		}
	}
	addToken(value)

	if len(seen) == 0 {
		return nil
	}
	slots := make([]int, 0, len(seen))
	for s := range seen {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	return slots
}

// expandStringToken adds one "N" or "start-end" token to the set.
func expandStringToken(token string, seen map[int]bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	if start, end, ok := splitRange(token); ok {
		for i := start; i <= end; i++ {
			seen[i] = true
		}
		return
	}

	if n, err := strconv.Atoi(token); err == nil {
		seen[n] = true
	}
}

// splitRange parses "start-end" with both bounds numeric and start <= end.
func splitRange(token string) (start, end int, ok bool) {
	lo, hi, found := strings.Cut(token, "-")
	if !found {
		return 0, 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}
