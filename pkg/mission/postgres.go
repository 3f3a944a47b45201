package mission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// DefaultTable is the mission table name used when none is configured.
const DefaultTable = "missions"

// PostgresSource reads records from a missions table with text columns
// pu_city, tdate, disptime, enrtime, atstime, veh, asset and diagnosis.
type PostgresSource struct {
	db    *sqlx.DB
	table string
}

// NewPostgresSource wraps an open connection.
func NewPostgresSource(db *sqlx.DB, table string) *PostgresSource {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresSource{db: db, table: table}
}

// OpenPostgres connects to dsn and returns a source over table.
func OpenPostgres(ctx context.Context, dsn, table string) (*PostgresSource, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return NewPostgresSource(db, table), nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

type row struct {
	PickupCity sql.NullString `db:"pu_city"`
	Date       sql.NullString `db:"tdate"`
	Dispatch   sql.NullString `db:"disptime"`
	EnRoute    sql.NullString `db:"enrtime"`
	AtScene    sql.NullString `db:"atstime"`
	Vehicle    sql.NullString `db:"veh"`
	Asset      sql.NullString `db:"asset"`
	Diagnosis  sql.NullString `db:"diagnosis"`
}

func (s *PostgresSource) query() string {
	return fmt.Sprintf(`SELECT pu_city, tdate::text AS tdate, disptime::text AS disptime,
		enrtime::text AS enrtime, atstime::text AS atstime, veh, asset, diagnosis
		FROM %s`, pq.QuoteIdentifier(s.table))
}

// Load selects every row of the table.
func (s *PostgresSource) Load(ctx context.Context) ([]Record, error) {
	var rows []row
	if err := s.db.SelectContext(ctx, &rows, s.query()); err != nil {
		return nil, fmt.Errorf("selecting missions: %w", err)
	}
	records := make([]Record, len(rows))
	for i, r := range rows {
		records[i] = Record{
			PickupCity: r.PickupCity.String,
			Date:       r.Date.String,
			Dispatch:   r.Dispatch.String,
			EnRoute:    r.EnRoute.String,
			AtScene:    r.AtScene.String,
			Vehicle:    r.Vehicle.String,
			Asset:      r.Asset.String,
			Diagnosis:  r.Diagnosis.String,
		}
	}
	return records, nil
}
