// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grouping

import (
	"errors"
	"math/rand/v2"
	"sort"
)

var ErrInvalidGroupSize = errors.New("group size must be positive")

// Similarity returns the number of option indices shared by two answer sets
func Similarity(a, b []int) int {
	shared := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				shared++
				break
			}
		}
	}
	return shared
}

// MakeGroups partitions participants into groups of groupSize, greedily
// keeping the answers inside each group as different as possible.
//
// Each group is seeded with a random unplaced participant and then filled with
// whichever remaining participant has the lowest summed similarity to the
// members already in it. Candidates are scanned in ascending id order and the
// first minimum wins, so rng is the only source of non-determinism. The last
// group is smaller when len(answers) is not a multiple of groupSize.
func MakeGroups(answers map[string][]int, groupSize int, rng *rand.Rand) ([][]string, error) {
	if groupSize <= 0 {
		return nil, ErrInvalidGroupSize
	}

	// Stable candidate order
	remaining := make([]string, 0, len(answers))
	for id := range answers {
		remaining = append(remaining, id)
	}
	sort.Strings(remaining)

	groups := [][]string{}
	for len(remaining) > 0 {
		// Seed
		i := rng.IntN(len(remaining))
		group := []string{remaining[i]}
		remaining = removeAt(remaining, i)

		for len(group) < groupSize && len(remaining) > 0 {
			best, bestScore := 0, -1
			for j, candidate := range remaining {
				score := 0
				for _, member := range group {
					score += Similarity(answers[candidate], answers[member])
				}
				if bestScore < 0 || score < bestScore {
					best, bestScore = j, score
				}
			}
			group = append(group, remaining[best])
			remaining = removeAt(remaining, best)
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// GroupScore sums pairwise similarity inside a group; lower is more diverse
func GroupScore(answers map[string][]int, group []string) int {
	total := 0
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			total += Similarity(answers[group[i]], answers[group[j]])
		}
	}
	return total
}

// removeAt deletes index i keeping order
func removeAt(s []string, i int) []string {
	return append(s[:i], s[i+1:]...)
}
