// Package stream provides bulk operations over slices: map, flat-map,
// reduce, grouping, partitioning and searching. Every function reads its
// input once, in order, and never modifies it.
package stream

import (
	"cmp"

	"github.com/samber/lo"
)

// Filter returns the elements for which keep is true.
func Filter[T any](xs []T, keep func(T) bool) []T {
	return lo.Filter(xs, func(x T, _ int) bool { return keep(x) })
}

// Map applies f to every element.
func Map[T, R any](xs []T, f func(T) R) []R {
	return lo.Map(xs, func(x T, _ int) R { return f(x) })
}

// FlatMap concatenates the slices produced by f.
func FlatMap[T, R any](xs []T, f func(T) []R) []R {
	return lo.FlatMap(xs, func(x T, _ int) []R { return f(x) })
}

// Fold combines xs left to right starting from identity.
func Fold[T, A any](xs []T, identity A, f func(A, T) A) A {
	return lo.Reduce(xs, func(acc A, x T, _ int) A { return f(acc, x) }, identity)
}

// Reduce combines xs left to right. ok is false for an empty slice.
func Reduce[T any](xs []T, f func(T, T) T) (result T, ok bool) {
	if len(xs) == 0 {
		return result, false
	}
	return Fold(xs[1:], xs[0], f), true
}

// FindFirst returns the first element matching p.
func FindFirst[T any](xs []T, p func(T) bool) (T, bool) {
	return lo.Find(xs, p)
}

// AnyMatch reports whether some element matches p.
func AnyMatch[T any](xs []T, p func(T) bool) bool {
	return lo.ContainsBy(xs, p)
}

// MaxBy returns the first element with the greatest key.
func MaxBy[T any, K cmp.Ordered](xs []T, key func(T) K) (T, bool) {
	return MaxFunc(xs, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// MaxFunc returns the first greatest element according to compare.
func MaxFunc[T any](xs []T, compare func(a, b T) int) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return lo.MaxBy(xs, func(a, b T) bool { return compare(a, b) > 0 }), true
}

// ToSet collects the distinct keys of xs.
func ToSet[T any, K comparable](xs []T, key func(T) K) map[K]struct{} {
	return lo.SliceToMap(xs, func(x T) (K, struct{}) { return key(x), struct{}{} })
}

// Distinct returns the keys of xs in first-seen order.
func Distinct[T any, K comparable](xs []T, key func(T) K) []K {
	return lo.Uniq(Map(xs, key))
}
