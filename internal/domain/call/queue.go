package call

import "sort"

// OrderQueue sorts waiting calls for service: higher priority first, then
// oldest first. The sort is stable so calls that tie on both keys keep the
// order the store returned them in.
func OrderQueue(entries []*View) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Call, entries[j].Call
		if ra, rb := a.Priority().Rank(), b.Priority().Rank(); ra != rb {
			return ra < rb
		}
		return a.CreatedAt().Before(b.CreatedAt())
	})
}
