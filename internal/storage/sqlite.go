// Package storage provides SQLite-based persistence for generated floors.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for floor persistence.
type Store struct {
	db *sql.DB
}

// FloorEntry represents a single saved floor record. Layout holds the
// rendered ASCII map so saved floors can be shown without regenerating.
type FloorEntry struct {
	ID        int64
	Seed      uint64
	Topology  string
	RoomCount int
	Hallways  int
	Layout    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS floors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			topology TEXT NOT NULL,
			room_count INTEGER NOT NULL,
			hallways INTEGER NOT NULL DEFAULT 0,
			layout TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_floors_topology ON floors(topology);
		CREATE INDEX IF NOT EXISTS idx_floors_seed ON floors(seed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveFloor records a generated floor.
// Returns the ID of the inserted record.
func (s *Store) SaveFloor(entry FloorEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO floors (seed, topology, room_count, hallways, layout)
		 VALUES (?, ?, ?, ?, ?)`,
		int64(entry.Seed), entry.Topology, entry.RoomCount, entry.Hallways, entry.Layout,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save floor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentFloors retrieves the most recently saved floors.
func (s *Store) RecentFloors(limit int) ([]FloorEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, topology, room_count, hallways, layout, created_at
		 FROM floors
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query floors: %w", err)
	}
	defer rows.Close()

	var entries []FloorEntry
	for rows.Next() {
		e, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// FloorByID retrieves a saved floor by its record ID.
// Returns nil if no such floor exists.
func (s *Store) FloorByID(id int64) (*FloorEntry, error) {
	var e FloorEntry
	var seed int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, topology, room_count, hallways, layout, created_at
		 FROM floors
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &seed, &e.Topology, &e.RoomCount, &e.Hallways, &e.Layout, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query floor: %w", err)
	}

	e.Seed = uint64(seed)
	e.CreatedAt = parseCreatedAt(createdAt)
	return &e, nil
}

// FloorsByTopology retrieves saved floors generated with the given topology.
func (s *Store) FloorsByTopology(topology string, limit int) ([]FloorEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, topology, room_count, hallways, layout, created_at
		 FROM floors
		 WHERE topology = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		topology, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query floors: %w", err)
	}
	defer rows.Close()

	var entries []FloorEntry
	for rows.Next() {
		e, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteFloor removes a saved floor by its record ID.
func (s *Store) DeleteFloor(id int64) error {
	_, err := s.db.Exec("DELETE FROM floors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete floor: %w", err)
	}
	return nil
}

// ClearFloors deletes all saved floors.
func (s *Store) ClearFloors() error {
	_, err := s.db.Exec("DELETE FROM floors")
	if err != nil {
		return fmt.Errorf("storage: cannot clear floors: %w", err)
	}
	return nil
}

// TopologyStats contains aggregated statistics for one topology kind.
type TopologyStats struct {
	Topology      string
	FloorCount    int
	AvgRooms      float64
	TotalHallways int64
	LastGenerated time.Time
}

// GetTopologyStats retrieves aggregated statistics grouped by topology kind.
func (s *Store) GetTopologyStats() (map[string]*TopologyStats, error) {
	rows, err := s.db.Query(
		`SELECT topology, COUNT(*), AVG(room_count), SUM(hallways), MAX(created_at)
		 FROM floors
		 GROUP BY topology`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get topology stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TopologyStats)
	for rows.Next() {
		var st TopologyStats
		var lastGenerated any
		if err := rows.Scan(&st.Topology, &st.FloorCount, &st.AvgRooms, &st.TotalHallways, &lastGenerated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastGenerated = parseCreatedAt(lastGenerated)
		stats[st.Topology] = &st
	}

	return stats, nil
}

// scanFloor reads one floor row from a multi-row query.
func scanFloor(rows *sql.Rows) (FloorEntry, error) {
	var e FloorEntry
	var seed int64
	var createdAt any
	if err := rows.Scan(&e.ID, &seed, &e.Topology, &e.RoomCount, &e.Hallways, &e.Layout, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Seed = uint64(seed)
	e.CreatedAt = parseCreatedAt(createdAt)
	return e, nil
}

// parseCreatedAt handles both time.Time and string datetime representations.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
