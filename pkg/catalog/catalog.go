// Package catalog holds the read-only location coordinate catalog that
// coverage, SLA and siting analyses resolve names against.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
)

// Location is a named point on the map. Bases are Locations used in the
// base role.
type Location struct {
	Name       string `json:"name" yaml:"name"`
	geo.LatLon `yaml:",inline"`
}

type entry struct {
	coord geo.LatLon
	ok    bool
}

// Catalog maps normalized location names to coordinates. It is immutable
// after construction and safe for concurrent readers.
type Catalog struct {
	entries map[string]entry
	names   []string
}

// Normalize upper-cases and trims a location name.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// New builds a catalog from name -> coordinate pairs. Invalid coordinates are
// kept as entries without a position so they still count toward Len.
func New(coords map[string]geo.LatLon) *Catalog {
	raw := make(map[string][]*float64, len(coords))
	for name, c := range coords {
		lat, lon := c.Lat, c.Lon
		raw[name] = []*float64{&lat, &lon}
	}
	return build(raw)
}

// Load reads a catalog file. The file maps names to [lat, lon] pairs; JSON
// and YAML encodings are both accepted, and null coordinates are tolerated.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog bytes.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string][]*float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return build(raw), nil
}

func build(raw map[string][]*float64) *Catalog {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := &Catalog{entries: make(map[string]entry, len(raw))}
	for _, k := range keys {
		name := Normalize(k)
		if name == "" {
			continue
		}
		e := toEntry(raw[k])
		prev, seen := c.entries[name]
		if seen && (prev.ok || !e.ok) {
			continue
		}
		if !seen {
			c.names = append(c.names, name)
		}
		c.entries[name] = e
	}
	sort.Strings(c.names)
	return c
}

func toEntry(pair []*float64) entry {
	if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
		return entry{}
	}
	p := geo.LatLon{Lat: *pair[0], Lon: *pair[1]}
	return entry{coord: p, ok: p.Valid()}
}

// Len returns the number of catalog entries, including those without usable
// coordinates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Lookup resolves a name. The second result is false when the name is
// unknown or has no usable coordinates.
func (c *Catalog) Lookup(name string) (Location, bool) {
	if c == nil {
		return Location{}, false
	}
	n := Normalize(name)
	e, ok := c.entries[n]
	if !ok || !e.ok {
		return Location{}, false
	}
	return Location{Name: n, LatLon: e.coord}, true
}

// Locations returns every entry with usable coordinates, sorted by name.
func (c *Catalog) Locations() []Location {
	if c == nil {
		return nil
	}
	out := make([]Location, 0, len(c.names))
	for _, n := range c.names {
		if e := c.entries[n]; e.ok {
			out = append(out, Location{Name: n, LatLon: e.coord})
		}
	}
	return out
}

// Points returns the coordinates of Locations in the same order.
func (c *Catalog) Points() []geo.LatLon {
	locs := c.Locations()
	pts := make([]geo.LatLon, len(locs))
	for i, l := range locs {
		pts[i] = l.LatLon
	}
	return pts
}

// Marshal encodes the catalog in the same name -> [lat, lon] layout Load reads.
func (c *Catalog) Marshal() ([]byte, error) {
	out := make(map[string][]*float64, c.Len())
	for _, n := range c.names {
		e := c.entries[n]
		if !e.ok {
			out[n] = []*float64{nil, nil}
			continue
		}
		lat, lon := e.coord.Lat, e.coord.Lon
		out[n] = []*float64{&lat, &lon}
	}
	return yaml.Marshal(out)
}
