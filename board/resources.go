package board

import (
	"fmt"
	"strings"
)

type Resource int

const (
	Wood Resource = iota
	Metal
	Oil
	Food
)

var AllResources = [...]Resource{Wood, Metal, Oil, Food}

var resourceNames = [...]string{"wood", "metal", "oil", "food"}

func (r Resource) String() string {
	if r < 0 || int(r) >= len(resourceNames) {
		return fmt.Sprintf("resource(%d)", int(r))
	}
	return resourceNames[r]
}

// Resources is an inventory of the four resource kinds. Inventories stored on
// fields never go negative.
type Resources struct {
	Wood  int `yaml:"wood"`
	Metal int `yaml:"metal"`
	Oil   int `yaml:"oil"`
	Food  int `yaml:"food"`
}

// Single returns an inventory holding n units of r.
func Single(r Resource, n int) Resources {
	var res Resources
	res.set(r, n)
	return res
}

func (r Resources) Get(kind Resource) int {
	switch kind {
	case Wood:
		return r.Wood
	case Metal:
		return r.Metal
	case Oil:
		return r.Oil
	case Food:
		return r.Food
	}
	return 0
}

func (r *Resources) set(kind Resource, n int) {
	switch kind {
	case Wood:
		r.Wood = n
	case Metal:
		r.Metal = n
	case Oil:
		r.Oil = n
	case Food:
		r.Food = n
	}
}

func (r Resources) Add(other Resources) Resources {
	return Resources{
		Wood:  r.Wood + other.Wood,
		Metal: r.Metal + other.Metal,
		Oil:   r.Oil + other.Oil,
		Food:  r.Food + other.Food,
	}
}

// Sub removes other from r. The second return value is false, and r is
// returned unchanged, if any kind would go negative.
func (r Resources) Sub(other Resources) (Resources, bool) {
	if !r.Covers(other) {
		return r, false
	}
	return Resources{
		Wood:  r.Wood - other.Wood,
		Metal: r.Metal - other.Metal,
		Oil:   r.Oil - other.Oil,
		Food:  r.Food - other.Food,
	}, true
}

// Covers reports whether r holds at least other of every kind.
func (r Resources) Covers(other Resources) bool {
	return r.Wood >= other.Wood && r.Metal >= other.Metal && r.Oil >= other.Oil && r.Food >= other.Food
}

func (r Resources) Negative() bool {
	return r.Wood < 0 || r.Metal < 0 || r.Oil < 0 || r.Food < 0
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) Total() int {
	return r.Wood + r.Metal + r.Oil + r.Food
}

func (r Resources) String() string {
	var parts []string
	for _, kind := range AllResources {
		if n := r.Get(kind); n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
