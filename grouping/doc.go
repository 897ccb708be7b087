// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package grouping splits finalized poll participants into diverse groups.

# Similarity

Two participants are similar when they picked the same options:

	grouping.Similarity([]int{1, 2, 3}, []int{3, 4, 5}) // 1

# Greedy Partition

MakeGroups seeds each group with a random unplaced participant, then keeps
adding the remaining participant whose summed similarity to the current
members is lowest:

	rng := rand.New(rand.NewPCG(seed, seed))
	groups, err := grouping.MakeGroups(answers, 5, rng)

Ties go to the first candidate in ascending id order. The random source is
injected so a fixed seed reproduces the same groups. When the participant
count is not a multiple of the group size the last group is smaller. An empty
input yields no groups; a non-positive group size returns ErrInvalidGroupSize.

The heuristic is O(n² · groupSize), which is fine at poll capacity (35).
*/
package grouping
