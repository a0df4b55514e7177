package reservation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/spothopper-reserve/internal/internaltypes"
)

// Venue is a restaurant known to SpotHopper by its spot id.
type Venue struct {
	Name   string
	SpotID int64
}

// Venues maps a venue name to its SpotHopper spot id. Keys are lowercase;
// build tables from user input with With so names stay case-insensitive.
type Venues map[string]int64

// DefaultVenues holds the venues shipped with the tool.
func DefaultVenues() Venues {
	return Venues{"slainte": 0xBAE}
}

func venueKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// With returns a new table holding v overlaid with more. Names are
// lowercased, so an entry in more replaces any case variant in v.
func (v Venues) With(more Venues) Venues {
	out := make(Venues, len(v)+len(more))
	for n, id := range v {
		out[venueKey(n)] = id
	}
	for n, id := range more {
		out[venueKey(n)] = id
	}
	return out
}

func (v Venues) Lookup(name string) (Venue, error) {
	key := venueKey(name)
	id, ok := v[key]
	if !ok {
		return Venue{}, fmt.Errorf("venue %q: %w", name, internaltypes.ErrNotFound)
	}
	return Venue{Name: key, SpotID: id}, nil
}

// IsNamed reports whether name refers to venue v.
func (v Venue) IsNamed(name string) bool {
	return v.Name == venueKey(name)
}

// List returns the venues sorted by name.
func (v Venues) List() []Venue {
	out := make([]Venue, 0, len(v))
	for n, id := range v {
		out = append(out, Venue{Name: n, SpotID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
