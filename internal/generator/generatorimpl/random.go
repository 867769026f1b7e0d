package generatorimpl

import (
	"math/rand/v2"
	"time"
)

const day = 24 * time.Hour

// intBetween returns a uniform integer in [min, max].
func intBetween(r *rand.Rand, min, max int) int {
	return min + r.IntN(max-min+1)
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// recentTime is uniform in [now-lookback, now] at millisecond resolution.
func recentTime(r *rand.Rand, now time.Time, lookback time.Duration) time.Time {
	ms := r.Int64N(lookback.Milliseconds() + 1)
	return now.Add(-time.Duration(ms) * time.Millisecond)
}

// pickDistinctUsers draws up to k distinct user ids from [1, userCount]
// excluding author. It runs a partial Fisher-Yates shuffle over the virtual
// candidate list, tracking only the slots it has swapped, so the cost is
// O(k) whatever userCount is. Fewer than k ids come back when there are not
// enough candidates.
func pickDistinctUsers(r *rand.Rand, userCount, author, k int) []int {
	n := userCount
	excluded := author >= 1 && author <= userCount
	if excluded {
		n--
	}
	k = min(k, n)
	if k <= 0 {
		return nil
	}

	swapped := make(map[int]int, 2*k)
	slot := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	ids := make([]int, 0, k)
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		vi, vj := slot(i), slot(j)
		swapped[i], swapped[j] = vj, vi

		// candidate slots skip over the author's id
		id := vj + 1
		if excluded && id >= author {
			id++
		}
		ids = append(ids, id)
	}
	return ids
}
