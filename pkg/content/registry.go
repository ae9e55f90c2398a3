package content

import (
	"fmt"
	"sort"
)

// Registry is an immutable, insertion-ordered snapshot of content items.
// All queries are linear scans; it is safe for concurrent readers.
type Registry struct {
	items []Item
}

// NewRegistry validates items and copies them into a new registry.
func NewRegistry(items []Item) (*Registry, error) {
	seen := make(map[string]struct{}, len(items))
	copied := make([]Item, 0, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
		copied = append(copied, it)
	}
	return &Registry{items: copied}, nil
}

// Len returns the number of items.
func (r *Registry) Len() int {
	return len(r.items)
}

// Items returns a copy of every item in registry order.
func (r *Registry) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the item with the given id.
func (r *Registry) Get(id string) (Item, bool) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemsOnDay returns the items scheduled on d, in registry order.
func (r *Registry) ItemsOnDay(d Date) []Item {
	return r.collect(func(it Item) bool { return it.Date == d })
}

// ItemsInMonth returns the items dated between the first and last day of ym inclusive.
func (r *Registry) ItemsInMonth(ym YearMonth) []Item {
	return r.ItemsInRange(ym.First(), ym.Last())
}

// ItemsInRange returns the items dated within [from, to]. An inverted range is empty.
func (r *Registry) ItemsInRange(from, to Date) []Item {
	if from.After(to) {
		return []Item{}
	}
	return r.collect(func(it Item) bool {
		return !it.Date.Before(from) && !it.Date.After(to)
	})
}

// Upcoming returns items dated on or after from, earliest first. Items sharing a
// day keep registry order. limit <= 0 returns all of them.
func (r *Registry) Upcoming(from Date, limit int) []Item {
	out := r.collect(func(it Item) bool { return !it.Date.Before(from) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *Registry) collect(keep func(Item) bool) []Item {
	out := []Item{}
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// FilterByPlatform keeps the items whose platform equals p exactly. PlatformBoth
// only matches items marked both; it does not satisfy single-platform queries.
func FilterByPlatform(items []Item, p Platform) []Item {
	out := []Item{}
	for _, it := range items {
		if it.Platform == p {
			out = append(out, it)
		}
	}
	return out
}
