package template

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
)

// Pool holds the templates available to the spatial solver, keyed by the room
// types they may represent. A pool may additionally register zone-preferred
// sub-pools; selection narrows to the preferred set first and falls back to
// the full per-type pool when the narrowed set is empty.
type Pool struct {
	templates []*Template
	byType    map[core.RoomType][]*Template
	zonePref  map[int]map[string]bool // zone -> preferred template IDs
}

// NewPool builds a pool from the given templates.
func NewPool(templates ...*Template) *Pool {
	p := &Pool{
		templates: templates,
		byType:    make(map[core.RoomType][]*Template),
		zonePref:  make(map[int]map[string]bool),
	}
	for _, t := range templates {
		if len(t.RoomTypes) == 0 {
			continue // wildcard templates resolved in ForType
		}
		for _, rt := range t.RoomTypes {
			p.byType[rt] = append(p.byType[rt], t)
		}
	}
	return p
}

// Add appends a template to the pool.
func (p *Pool) Add(t *Template) {
	p.templates = append(p.templates, t)
	for _, rt := range t.RoomTypes {
		p.byType[rt] = append(p.byType[rt], t)
	}
}

// PreferForZone registers template IDs preferred when placing rooms whose
// node lies in the given zone.
func (p *Pool) PreferForZone(zone int, ids ...string) {
	set := p.zonePref[zone]
	if set == nil {
		set = make(map[string]bool)
		p.zonePref[zone] = set
	}
	for _, id := range ids {
		set[id] = true
	}
}

// ForType returns every template eligible for the given room type, in pool
// order. Wildcard templates (no declared types) are always eligible.
func (p *Pool) ForType(rt core.RoomType) []*Template {
	out := make([]*Template, 0, len(p.templates))
	for _, t := range p.templates {
		if t.AllowsType(rt) {
			out = append(out, t)
		}
	}
	return out
}

// HasType reports whether at least one template may represent the type.
func (p *Pool) HasType(rt core.RoomType) bool {
	for _, t := range p.templates {
		if t.AllowsType(rt) {
			return true
		}
	}
	return false
}

// Len returns the number of templates in the pool.
func (p *Pool) Len() int {
	return len(p.templates)
}

// All returns the pool contents in insertion order.
func (p *Pool) All() []*Template {
	return p.templates
}

// Pick selects a template for a room via weighted random draw. Candidates are
// narrowed first by the room's difficulty band and then by the zone-preferred
// sub-pool; each narrowing falls back to the wider set when it would leave no
// candidates. zone < 0 means no zone.
func (p *Pool) Pick(rt core.RoomType, difficulty float64, zone int, rng *core.RNG) (*Template, error) {
	candidates := p.ForType(rt)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("template: no templates for room type %q", rt)
	}

	if narrowed := filterDifficulty(candidates, difficulty); len(narrowed) > 0 {
		candidates = narrowed
	}
	if zone >= 0 {
		if pref := p.zonePref[zone]; len(pref) > 0 {
			narrowed := candidates[:0:0]
			for _, t := range candidates {
				if pref[t.ID] {
					narrowed = append(narrowed, t)
				}
			}
			if len(narrowed) > 0 {
				candidates = narrowed
			}
		}
	}

	return weightedDraw(candidates, rng), nil
}

func filterDifficulty(ts []*Template, d float64) []*Template {
	out := ts[:0:0]
	for _, t := range ts {
		if t.AllowsDifficulty(d) {
			out = append(out, t)
		}
	}
	return out
}

func weightedDraw(ts []*Template, rng *core.RNG) *Template {
	total := 0
	for _, t := range ts {
		total += t.Weight
	}
	pick := rng.Intn(total)
	cumulative := 0
	for _, t := range ts {
		cumulative += t.Weight
		if pick < cumulative {
			return t
		}
	}
	return ts[len(ts)-1]
}
