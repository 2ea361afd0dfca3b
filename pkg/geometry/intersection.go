package geometry

import (
	"cmp"
	"fmt"
	"slices"
)

// Intersection records a ray striking a shape at parameter T
type Intersection struct {
	Object Shape
	T      float64
}

// NewIntersection creates a new intersection
func NewIntersection(obj Shape, t float64) Intersection {
	return Intersection{Object: obj, T: t}
}

// Equal reports whether both intersections name the same shape at the same t
func (i Intersection) Equal(other Intersection) bool {
	if i.Object == nil || other.Object == nil {
		return i.Object == nil && other.Object == nil && i.T == other.T
	}
	return i.Object.ID() == other.Object.ID() && i.T == other.T
}

func (i Intersection) String() string {
	if i.Object == nil {
		return fmt.Sprintf("intersection(t=%g)", i.T)
	}
	return fmt.Sprintf("intersection(%s %s, t=%g)", i.Object.Kind(), i.Object.ID(), i.T)
}

// Intersections is a list of intersections kept sorted by ascending t.
// Ties keep the order in which they were added.
type Intersections struct {
	items []Intersection
}

// NewIntersections creates a sorted set from xs in any order
func NewIntersections(xs ...Intersection) Intersections {
	items := make([]Intersection, len(xs))
	copy(items, xs)
	sortByT(items)
	return Intersections{items: items}
}

// Add inserts x, keeping the list sorted
func (xs *Intersections) Add(x Intersection) {
	xs.items = append(xs.items, x)
	sortByT(xs.items)
}

// Merge returns a new sorted set holding the entries of both inputs
func (xs Intersections) Merge(other Intersections) Intersections {
	items := make([]Intersection, 0, len(xs.items)+len(other.items))
	items = append(items, xs.items...)
	items = append(items, other.items...)
	sortByT(items)
	return Intersections{items: items}
}

// Len returns the number of intersections
func (xs Intersections) Len() int { return len(xs.items) }

// At returns the i-th intersection in t order
func (xs Intersections) At(i int) Intersection { return xs.items[i] }

// All returns a copy of the intersections in t order
func (xs Intersections) All() []Intersection {
	return slices.Clone(xs.items)
}

// Contains reports whether x is in the set
func (xs Intersections) Contains(x Intersection) bool {
	return slices.ContainsFunc(xs.items, x.Equal)
}

// Hit returns the intersection with the smallest positive t.
// The second result is false when every t is <= 0.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs.items {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

func sortByT(items []Intersection) {
	slices.SortStableFunc(items, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}
