package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chemtrace/prose2actions/internal/convert"
)

// Sample origins tracked by the store.
const (
	OriginAnnotated = "annotated"
	OriginAugmented = "augmented"
	OriginPredicted = "predicted"
)

// Store persists annotated samples in SQLite, keyed by dataset. Actions are
// stored in their wire format, so the database stays readable and diffable
// against the aligned-file representation.
type Store struct {
	db   *sql.DB
	conv *convert.Converter
}

// NewStore creates a sample store.
func NewStore(db *sql.DB, conv *convert.Converter) *Store {
	return &Store{db: db, conv: conv}
}

// Import inserts samples into a dataset, skipping samples whose text is
// already present. It returns the number of samples actually inserted.
func (s *Store) Import(ctx context.Context, dataset, origin string, samples []Sample) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}

	inserted := 0
	for _, sample := range samples {
		line, err := s.conv.ActionsToString(sample.Actions)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("serialize sample %q: %w", sample.Text, err)
		}
		res, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO samples(dataset, text, actions, origin, created_at)
			VALUES(?, ?, ?, ?, ?)`, dataset, sample.Text, line, origin, now)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert sample: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("read rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return inserted, nil
}

// Export returns all samples of a dataset in insertion order.
func (s *Store) Export(ctx context.Context, dataset string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT text, actions FROM samples WHERE dataset=? ORDER BY id`, dataset)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []Sample
	for rows.Next() {
		var text, line string
		if err := rows.Scan(&text, &line); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		seq, err := s.conv.StringToActions(line)
		if err != nil {
			return nil, fmt.Errorf("parse stored actions for %q: %w", text, err)
		}
		samples = append(samples, Sample{Text: text, Actions: seq})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

// DatasetStat summarizes one dataset in the store.
type DatasetStat struct {
	Dataset string
	Origin  string
	Count   int
}

// Stats returns per-dataset, per-origin sample counts.
func (s *Store) Stats(ctx context.Context) ([]DatasetStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT dataset, origin, COUNT(*) FROM samples GROUP BY dataset, origin ORDER BY dataset, origin`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []DatasetStat
	for rows.Next() {
		var st DatasetStat
		if err := rows.Scan(&st.Dataset, &st.Origin, &st.Count); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}

// DeleteDataset removes a dataset and returns the number of deleted samples.
func (s *Store) DeleteDataset(ctx context.Context, dataset string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE dataset=?`, dataset)
	if err != nil {
		return 0, fmt.Errorf("delete dataset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return int(n), nil
}
