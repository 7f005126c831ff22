package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ameliastxne/druzhok/internal/emotion"
)

// Store provides access to the activity journal.
type Store struct {
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		startedAt REAL NOT NULL,
		emotion TEXT NOT NULL,
		durationSeconds INTEGER NOT NULL,
		activities INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_journal_emotion ON journal(emotion);
`

// Fixtures are the sample records the journal starts with.
var Fixtures = []Entry{
	{StartedAt: time.Date(2025, time.October, 5, 14, 30, 0, 0, time.UTC), Emotion: emotion.Anger, Duration: 7 * time.Minute, Activities: 2},
	{StartedAt: time.Date(2025, time.October, 12, 10, 15, 0, 0, time.UTC), Emotion: emotion.Fear, Duration: 5*time.Minute + 15*time.Second, Activities: 1},
	{StartedAt: time.Date(2025, time.October, 18, 16, 45, 0, 0, time.UTC), Emotion: emotion.Sadness, Duration: 8*time.Minute + 30*time.Second, Activities: 3},
	{StartedAt: time.Date(2025, time.October, 23, 11, 20, 0, 0, time.UTC), Emotion: emotion.Joy, Duration: 4 * time.Minute, Activities: 0},
	{StartedAt: time.Date(2025, time.October, 28, 15, 10, 0, 0, time.UTC), Emotion: emotion.Anger, Duration: 6*time.Minute + 30*time.Second, Activities: 1},
}

// OpenMemory opens a private in-memory journal seeded with Fixtures.
// Nothing is written to disk.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	for _, e := range Fixtures {
		if _, err := s.Add(e); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Add inserts a journal row and returns its ID.
func (s *Store) Add(e Entry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO journal (startedAt, emotion, durationSeconds, activities)
		VALUES (?, ?, ?, ?)
	`, unixFromTime(e.StartedAt), e.Emotion.String(), int64(e.Duration/time.Second), e.Activities)
	if err != nil {
		return 0, fmt.Errorf("insert journal entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert journal entry: %w", err)
	}
	return id, nil
}

var orderColumns = map[Column]string{
	ColumnDate:       "startedAt",
	ColumnEmotion:    "emotion",
	ColumnDuration:   "durationSeconds",
	ColumnActivities: "activities",
}

// ActivityLog returns the journal rows matching q. Ties keep insertion order.
func (s *Store) ActivityLog(q Query) ([]Entry, error) {
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = ColumnDate
	}
	col, ok := orderColumns[orderBy]
	if !ok {
		return nil, fmt.Errorf("query journal: unknown column %q", orderBy)
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	query := `SELECT id, startedAt, emotion, durationSeconds, activities FROM journal`
	var args []any
	if q.Emotion != emotion.None {
		query += ` WHERE emotion = ?`
		args = append(args, q.Emotion.String())
	}
	query += fmt.Sprintf(` ORDER BY %s %s, id ASC`, col, dir)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedAt float64
		var emo string
		var seconds int64
		if err := rows.Scan(&e.ID, &startedAt, &emo, &seconds, &e.Activities); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.StartedAt = timeFromUnix(startedAt).UTC()
		e.Emotion, _ = emotion.Parse(emo)
		e.Duration = time.Duration(seconds) * time.Second
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EmotionCounts returns how many rows each emotion has, most frequent first.
func (s *Store) EmotionCounts() ([]EmotionCount, error) {
	rows, err := s.db.Query(`
		SELECT emotion, COUNT(*) AS n
		FROM journal
		GROUP BY emotion
		ORDER BY n DESC, emotion ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("count emotions: %w", err)
	}
	defer rows.Close()

	var counts []EmotionCount
	for rows.Next() {
		var emo string
		var c EmotionCount
		if err := rows.Scan(&emo, &c.Count); err != nil {
			return nil, fmt.Errorf("scan emotion count: %w", err)
		}
		c.Emotion, _ = emotion.Parse(emo)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
