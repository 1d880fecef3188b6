package lru

import (
	"fmt"
	"slices"
	"strings"
)

// String renders the cache's fill percentage and a key-sorted listing
// of its contents. It is a debugging aid only; the format is not
// stable and must not be parsed. Unlike [Cache.Get], rendering does
// not touch entry recency.
func (c *Cache[Key, Value]) String() string {
	var (
		percent = float64(c.currentSpace) * 100.0 / float64(c.spaceLimit)
		lines   = make([]string, 0, len(c.index))
	)
	for key, entry := range c.index {
		lines = append(lines, fmt.Sprintf("%v -> %v", key, entry.Value))
	}
	slices.Sort(lines)
	var builder strings.Builder
	fmt.Fprintf(&builder, "Cache %g%% full\n", percent)
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
