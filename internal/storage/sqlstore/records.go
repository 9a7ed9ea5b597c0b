package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

func trackerExists(q querier, id uuid.UUID) (bool, error) {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM trackers WHERE id = ?", id.String()).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ToggleRecord deletes the record for (trackerID, day) if one exists and
// inserts one otherwise. The check and the write share a transaction and the
// unique index on (tracker_id, day) rejects a concurrent duplicate insert.
func (s *Store) ToggleRecord(trackerID uuid.UUID, day string) (bool, error) {
	var done bool
	err := s.withTx("toggle", "record", func(q querier) error {
		ok, err := trackerExists(q, trackerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("toggle", "tracker", trackerID.String())
		}

		res, err := q.Exec("DELETE FROM completion_records WHERE tracker_id = ? AND day = ?", trackerID.String(), day)
		if err != nil {
			return err
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if removed > 0 {
			done = false
			return nil
		}

		_, err = q.Exec(
			"INSERT INTO completion_records (id, tracker_id, day, created_at) VALUES (?, ?, ?, ?)",
			uuid.New().String(), trackerID.String(), day, formatTime(s.now()),
		)
		if err != nil {
			return err
		}
		done = true
		return nil
	})
	return done, err
}

func (s *Store) HasRecord(trackerID uuid.UUID, day string) (bool, error) {
	if err := s.ready("get", "record"); err != nil {
		return false, err
	}
	var id string
	err := s.conn().QueryRow(
		"SELECT id FROM completion_records WHERE tracker_id = ? AND day = ?", trackerID.String(), day,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Persistence("get", "record", err)
	}
	return true, nil
}

func (s *Store) CountRecords(trackerID uuid.UUID) (int, error) {
	if err := s.ready("count", "record"); err != nil {
		return 0, err
	}
	var n int
	if err := s.conn().QueryRow("SELECT COUNT(*) FROM completion_records WHERE tracker_id = ?", trackerID.String()).Scan(&n); err != nil {
		return 0, apperrors.Persistence("count", "record", err)
	}
	return n, nil
}

func (s *Store) CountAllRecords() (int, error) {
	if err := s.ready("count", "record"); err != nil {
		return 0, err
	}
	var n int
	if err := s.conn().QueryRow("SELECT COUNT(*) FROM completion_records").Scan(&n); err != nil {
		return 0, apperrors.Persistence("count", "record", err)
	}
	return n, nil
}

func (s *Store) GetRecordsForTracker(trackerID uuid.UUID) ([]models.CompletionRecord, error) {
	if err := s.ready("list", "record"); err != nil {
		return nil, err
	}
	rows, err := s.conn().Query(`
		SELECT id, tracker_id, day, created_at
		FROM completion_records WHERE tracker_id = ?
		ORDER BY day`, trackerID.String())
	if err != nil {
		return nil, apperrors.Persistence("list", "record", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var r models.CompletionRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.TrackerID, &r.Day, &createdAt); err != nil {
			return nil, apperrors.Persistence("list", "record", err)
		}
		r.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, apperrors.Persistence("list", "record", fmt.Errorf("failed to parse created_at for record %s: %w", r.ID, err))
		}
		records = append(records, r)
	}
	return records, apperrors.Persistence("list", "record", rows.Err())
}
