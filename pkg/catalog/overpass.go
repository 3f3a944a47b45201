package catalog

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/serjvanilla/go-overpass"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
)

// DefaultOverpassEndpoint is the public Overpass API interpreter.
const DefaultOverpassEndpoint = "https://overpass-api.de/api/interpreter"

// Fetcher builds catalogs from OpenStreetMap place nodes.
type Fetcher struct {
	client  overpass.Client
	timeout time.Duration
}

// NewFetcher creates a Fetcher against endpoint. An empty endpoint uses
// DefaultOverpassEndpoint.
func NewFetcher(endpoint string, timeout time.Duration) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultOverpassEndpoint
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Fetcher{
		client:  overpass.NewWithSettings(endpoint, 2, httpClient),
		timeout: timeout,
	}
}

var qlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// PlaceQuery returns the Overpass QL selecting city, town and village nodes
// inside the named administrative area.
func PlaceQuery(area string) string {
	return fmt.Sprintf(`
		[out:json][timeout:%d];
		area["name"="%s"]["boundary"="administrative"]->.searchArea;
		(
			node["place"~"^(city|town|village)$"](area.searchArea);
		);
		out body;
	`, 60, qlEscaper.Replace(area))
}

// Fetch queries place nodes inside area and returns them as a catalog.
func (f *Fetcher) Fetch(ctx context.Context, area string) (*Catalog, error) {
	type outcome struct {
		res overpass.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := f.client.Query(PlaceQuery(area))
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("overpass query for %q: %w", area, ctx.Err())
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("overpass query for %q: %w", area, o.err)
		}
		return fromNodes(&o.res), nil
	}
}

func fromNodes(result *overpass.Result) *Catalog {
	ids := make([]int64, 0, len(result.Nodes))
	for id := range result.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	coords := make(map[string]geo.LatLon, len(ids))
	ranks := make(map[string]int, len(ids))
	for _, id := range ids {
		node := result.Nodes[id]
		key := Normalize(node.Tags["name"])
		if key == "" {
			continue
		}
		// Duplicate place names keep the larger settlement.
		rank := placeRank(node.Tags["place"])
		if prev, ok := ranks[key]; ok && rank <= prev {
			continue
		}
		coords[key] = geo.LatLon{Lat: node.Lat, Lon: node.Lon}
		ranks[key] = rank
	}
	return New(coords)
}

func placeRank(place string) int {
	switch place {
	case "city":
		return 3
	case "town":
		return 2
	case "village":
		return 1
	}
	return 0
}
