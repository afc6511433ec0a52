package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/etnz/etfcast"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists projection runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS projection_runs (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp       INTEGER NOT NULL,
		symbol          TEXT NOT NULL,
		growth_rate     REAL,
		yield_rate      REAL,
		years_of_data   REAL,
		latest_price    REAL,
		short_history   INTEGER,
		lump_sum        REAL,
		monthly         REAL,
		horizon_years   INTEGER,
		reinvest        INTEGER,
		final_cost      REAL,
		final_assets    REAL,
		final_shares    REAL,
		final_dividends REAL,
		final_profit    REAL
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return err
	}
	_, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON projection_runs(symbol, timestamp)`)
	return err
}

// RecordRun stores one projection run.
func (r *SQLiteRecorder) RecordRun(report *etfcast.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := report.Metrics
	c := report.Projection.Config
	final := report.Projection.Final()

	_, err := r.db.Exec(`INSERT INTO projection_runs (
		timestamp, symbol, growth_rate, yield_rate, years_of_data,
		latest_price, short_history, lump_sum, monthly, horizon_years,
		reinvest, final_cost, final_assets, final_shares, final_dividends,
		final_profit
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), m.Symbol, m.GrowthRate, m.YieldRate, m.Years,
		m.LatestPrice, boolToInt(m.ShortHistory), c.LumpSum, c.Monthly,
		c.Years, boolToInt(c.Reinvest), final.Cost, final.Assets,
		final.Shares, final.Distributions, final.Profit)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error { return r.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
