package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/etnz/rupeelogic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists sessions to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Debug("sqlite history opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id             TEXT PRIMARY KEY,
			timestamp      INTEGER NOT NULL,
			age            INTEGER,
			risk_tolerance TEXT,
			goal_type      TEXT,
			time_horizon   INTEGER,
			profile        TEXT NOT NULL,
			recommendation TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ts ON sessions(timestamp)`,

		`CREATE TABLE IF NOT EXISTS fired_rules (
			session_id TEXT NOT NULL REFERENCES sessions(id),
			position   INTEGER NOT NULL,
			rule_id    TEXT NOT NULL,
			priority   INTEGER,
			confidence INTEGER,
			PRIMARY KEY (session_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fired_rule ON fired_rules(rule_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Record(rec *rupeelogic.Recommendation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, err := json.Marshal(rec.Profile)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO sessions
		(id, timestamp, age, risk_tolerance, goal_type, time_horizon, profile, recommendation)
		VALUES (?,?,?,?,?,?,?,?)`,
		id, r.now().UnixNano(), rec.Profile.Age, string(rec.Profile.RiskTolerance),
		string(rec.Goal.Type), rec.Goal.Horizon, string(profile), string(body),
	); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	for i, fr := range rec.Trail {
		if _, err := tx.Exec(`INSERT INTO fired_rules
			(session_id, position, rule_id, priority, confidence)
			VALUES (?,?,?,?,?)`,
			id, i, fr.ID, fr.Priority, fr.Confidence,
		); err != nil {
			return "", fmt.Errorf("insert fired rule: %w", err)
		}
	}
	return id, tx.Commit()
}

func (r *SQLiteRecorder) List(limit int) ([]Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, profile, goal_type, time_horizon, recommendation
		FROM sessions ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Rules, err = r.rules(sessions[i].ID); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *SQLiteRecorder) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, profile, goal_type, time_horizon, recommendation
		FROM sessions WHERE id LIKE ? || '%' ORDER BY timestamp DESC LIMIT 2`, id)
	if err != nil {
		return nil, err
	}
	var found []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		found = append(found, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	case 1:
	default:
		return nil, fmt.Errorf("ambiguous session id %q", id)
	}
	s := found[0]
	if s.Rules, err = r.rules(s.ID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteRecorder) rules(id string) ([]string, error) {
	rows, err := r.db.Query(`SELECT rule_id FROM fired_rules WHERE session_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var rule string
		if err := rows.Scan(&rule); err != nil {
			return nil, err
		}
		ids = append(ids, rule)
	}
	return ids, rows.Err()
}

func scanSession(rows *sql.Rows) (*Session, error) {
	var (
		s       Session
		ts      int64
		profile string
		goal    string
		body    string
	)
	if err := rows.Scan(&s.ID, &ts, &profile, &goal, &s.Goal.Horizon, &body); err != nil {
		return nil, err
	}
	s.Time = time.Unix(0, ts)
	s.Goal.Type = rupeelogic.GoalType(goal)
	s.Recommendation = json.RawMessage(body)
	if err := json.Unmarshal([]byte(profile), &s.Profile); err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}
	return &s, nil
}

func (r *SQLiteRecorder) Close() error { return r.db.Close() }
