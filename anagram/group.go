package anagram

import (
	"maps"
	"slices"
)

// Group is a set of words of the same length.
type Group struct {
	Length int      `json:"length"`
	Words  []string `json:"words"`
}

// GroupByLength sorts words into groups of equal length, shortest first,
// with each group in alphabetical order. Letters supplied by a wildcard are
// lower case and so sort after the upper case ones.
func GroupByLength(words []string) []Group {
	byLength := make(map[int][]string)
	for _, word := range words {
		byLength[len(word)] = append(byLength[len(word)], word)
	}

	groups := make([]Group, 0, len(byLength))
	for _, length := range slices.Sorted(maps.Keys(byLength)) {
		group := byLength[length]
		slices.Sort(group)
		groups = append(groups, Group{Length: length, Words: group})
	}
	return groups
}
