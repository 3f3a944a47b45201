package mission

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source loads the full historical mission set.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

// CSV column headers, matched after trimming surrounding whitespace.
const (
	ColPickupCity = "PU City"
	ColDate       = "tdate"
	ColDispatch   = "disptime"
	ColEnRoute    = "enrtime"
	ColAtScene    = "atstime"
	ColVehicle    = "veh"
	ColAsset      = "TASC Primary Asset"
	ColDiagnosis  = "Diagnosis"
)

// CSVSource reads records from a mission export file.
type CSVSource struct {
	Path string
}

// Load reads and parses the file on every call.
func (s CSVSource) Load(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening mission file: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return records, nil
}

// ReadCSV parses a header row followed by mission rows. Only the pickup city
// column is required; missing optional columns read as empty strings.
func ReadCSV(ctx context.Context, r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty mission file")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	if _, ok := idx[ColPickupCity]; !ok {
		return nil, fmt.Errorf("missing required column %q", ColPickupCity)
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, Record{
			PickupCity: field(row, ColPickupCity),
			Date:       field(row, ColDate),
			Dispatch:   field(row, ColDispatch),
			EnRoute:    field(row, ColEnRoute),
			AtScene:    field(row, ColAtScene),
			Vehicle:    field(row, ColVehicle),
			Asset:      field(row, ColAsset),
			Diagnosis:  field(row, ColDiagnosis),
		})
	}
	return records, nil
}

// StaticSource serves a fixed record slice.
type StaticSource []Record

// Load returns a copy of the slice.
func (s StaticSource) Load(context.Context) ([]Record, error) {
	out := make([]Record, len(s))
	copy(out, s)
	return out, nil
}
