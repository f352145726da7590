package label

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Len reports the total number of entries, missing-labeled ones included.
// Complexity: O(1).
func (a Assignment) Len() int { return len(a) }

// Defined reports the number of entries carrying a non-missing label.
// Complexity: O(n).
func (a Assignment) Defined() int {
	n := 0
	for _, v := range a {
		if v != Missing {
			n++
		}
	}

	return n
}

// Values returns the distinct non-missing labels in lexicographic order.
// The slice is freshly allocated; callers may mutate it freely.
// Complexity: O(n + k·log k) for n entries and k distinct labels.
func (a Assignment) Values() []Value {
	seen := make(map[Value]struct{}, len(a))
	for _, v := range a {
		if v != Missing {
			seen[v] = struct{}{}
		}
	}

	vals := make([]Value, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	return vals
}

// Groups returns the identifier set behind each non-missing label.
// Keys match Values() exactly; every set is non-empty. Sets are
// thread-unsafe by construction — each call returns fresh, independently
// owned sets, so no locking is needed.
// Complexity: O(n).
func (a Assignment) Groups() map[Value]mapset.Set[ID] {
	groups := make(map[Value]mapset.Set[ID])
	for id, v := range a {
		if v == Missing {
			continue
		}
		set, ok := groups[v]
		if !ok {
			set = mapset.NewThreadUnsafeSet[ID]()
			groups[v] = set
		}
		set.Add(id)
	}

	return groups
}

// IDs returns the set of identifiers carrying a non-missing label.
// Complexity: O(n).
func (a Assignment) IDs() mapset.Set[ID] {
	ids := mapset.NewThreadUnsafeSet[ID]()
	for id, v := range a {
		if v != Missing {
			ids.Add(id)
		}
	}

	return ids
}

// Clone returns an independent copy of the assignment.
// Complexity: O(n).
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	for id, v := range a {
		c[id] = v
	}

	return c
}

// MarkMissing returns a copy in which every label matched by pred is replaced
// with Missing. This is the caller-side hook for domain sentinel policy
// ("not.defined", "low.conf*", NA-likes): apply it once at the boundary and
// downstream consumers never see domain-specific string conventions.
// A nil pred yields a plain Clone.
// Complexity: O(n).
func (a Assignment) MarkMissing(pred func(Value) bool) Assignment {
	if pred == nil {
		return a.Clone()
	}

	c := make(Assignment, len(a))
	for id, v := range a {
		if v != Missing && pred(v) {
			c[id] = Missing
			continue
		}
		c[id] = v
	}

	return c
}
