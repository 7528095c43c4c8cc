package recorder

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite"

	"jp-stockgen/internal/model"
)

// SQLiteRecorder stores the latest snapshot and chart of every code plus a
// history of run summaries.
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

	slog.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			code           TEXT NOT NULL,
			market         TEXT NOT NULL,
			name           TEXT,
			price          REAL,
			change         REAL,
			change_percent REAL,
			volume         INTEGER,
			market_cap     REAL,
			sector         TEXT,
			last_update    TEXT,
			PRIMARY KEY (code, market)
		)`,

		`CREATE TABLE IF NOT EXISTS chart_points (
			code   TEXT NOT NULL,
			seq    INTEGER NOT NULL,
			date   TEXT,
			open   REAL,
			high   REAL,
			low    REAL,
			close  REAL,
			volume INTEGER,
			PRIMARY KEY (code, seq)
		)`,

		`CREATE TABLE IF NOT EXISTS summaries (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			last_update  TEXT NOT NULL,
			data_source  TEXT,
			total_stocks INTEGER,
			prime        INTEGER,
			standard     INTEGER,
			growth       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_ts ON summaries(last_update)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshots upserts by (code, market); a repeated pair keeps the last row.
func (r *SQLiteRecorder) RecordSnapshots(snapshots []model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO snapshots
			(code, market, name, price, change, change_percent, volume, market_cap, sector, last_update)
			VALUES (?,?,?,?,?,?,?,?,?,?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range snapshots {
			if _, err := stmt.Exec(
				s.Code, string(s.Market), s.Name, s.Price, s.Change, s.ChangePercent,
				s.Volume, s.MarketCap, s.Sector, s.LastUpdate,
			); err != nil {
				return fmt.Errorf("insert snapshot %s: %w", s.Code, err)
			}
		}
		return nil
	})
}

// RecordChart replaces every stored bar of code with series.
func (r *SQLiteRecorder) RecordChart(code string, series model.ChartSeries) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM chart_points WHERE code = ?`, code); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`INSERT INTO chart_points
			(code, seq, date, open, high, low, close, volume)
			VALUES (?,?,?,?,?,?,?,?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, p := range series {
			if _, err := stmt.Exec(code, i, p.Date, p.Open, p.High, p.Low, p.Close, p.Volume); err != nil {
				return fmt.Errorf("insert bar %s #%d: %w", code, i, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRecorder) RecordSummary(summary model.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO summaries
		(last_update, data_source, total_stocks, prime, standard, growth)
		VALUES (?,?,?,?,?,?)`,
		summary.LastUpdate, summary.DataSource, summary.TotalStocks,
		summary.Markets[model.MarketPrime],
		summary.Markets[model.MarketStandard],
		summary.Markets[model.MarketGrowth],
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	slog.Info("closing sqlite recorder")
	return r.db.Close()
}

func (r *SQLiteRecorder) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
