package stream

import (
	"github.com/samber/lo"
)

// GroupBy buckets xs by key. Each bucket keeps input order.
func GroupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	return lo.GroupBy(xs, key)
}

// GroupByThen groups by outer, then each bucket by inner.
func GroupByThen[T any, K1, K2 comparable](xs []T, outer func(T) K1, inner func(T) K2) map[K1]map[K2][]T {
	return lo.MapValues(GroupBy(xs, outer), func(bucket []T, _ K1) map[K2][]T {
		return GroupBy(bucket, inner)
	})
}

// CountBy counts the elements sharing each key.
func CountBy[T any, K comparable](xs []T, key func(T) K) map[K]int {
	return lo.CountValuesBy(xs, key)
}

// MaxByGroup keeps the greatest element of each group, per compare.
func MaxByGroup[T any, K comparable](xs []T, key func(T) K, compare func(a, b T) int) map[K]T {
	return lo.MapValues(GroupBy(xs, key), func(bucket []T, _ K) T {
		best, _ := MaxFunc(bucket, compare)
		return best
	})
}

// GroupMapSet groups xs by key and collects the distinct values of f per group.
func GroupMapSet[T any, K, V comparable](xs []T, key func(T) K, f func(T) V) map[K]map[V]struct{} {
	return lo.MapValues(GroupBy(xs, key), func(bucket []T, _ K) map[V]struct{} {
		return ToSet(bucket, f)
	})
}

// Partition splits xs into the elements matching p (true) and the rest (false).
// Both keys are always present and p runs once per element.
func Partition[T any](xs []T, p func(T) bool) map[bool][]T {
	out := lo.GroupBy(xs, p)
	for _, k := range []bool{true, false} {
		if out[k] == nil {
			out[k] = []T{}
		}
	}
	return out
}
