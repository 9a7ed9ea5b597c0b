package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
)

const selectItems = `
	SELECT t.id, t.name, t.color_hex, t.emoji, t.schedule_mask, t.category_title, c.title
	FROM trackers t LEFT JOIN categories c ON c.title = t.category_title`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (models.SnapshotItem, error) {
	var t models.Tracker
	var mask int
	var stored string
	var resolved sql.NullString
	if err := row.Scan(&t.ID, &t.Name, &t.ColorHex, &t.Emoji, &mask, &stored, &resolved); err != nil {
		return models.SnapshotItem{}, err
	}
	t.Schedule = models.ScheduleFromMask(uint16(mask))
	return models.SnapshotItem{
		Tracker:       storage.ApplyTrackerDefaults(t),
		CategoryTitle: storage.ResolveCategory(stored, resolved.Valid),
	}, nil
}

func (s *Store) AddTracker(t models.Tracker, categoryTitle string) error {
	return s.withTx("add", "tracker", func(q querier) error {
		if _, err := ensureCategory(q, categoryTitle); err != nil {
			return err
		}
		_, err := q.Exec(`
			INSERT INTO trackers (id, name, color_hex, emoji, schedule_mask, category_title, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID.String(), t.Name, t.ColorHex, t.Emoji, int(t.Schedule.Mask()), categoryTitle, formatTime(s.now()),
		)
		return err
	})
}

func (s *Store) GetTracker(id uuid.UUID) (models.SnapshotItem, error) {
	if err := s.ready("get", "tracker"); err != nil {
		return models.SnapshotItem{}, err
	}
	item, err := scanItem(s.conn().QueryRow(selectItems+" WHERE t.id = ?", id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SnapshotItem{}, apperrors.NotFound("get", "tracker", id.String())
	}
	if err != nil {
		return models.SnapshotItem{}, apperrors.Persistence("get", "tracker", err)
	}
	return item, nil
}

func (s *Store) UpdateTracker(t models.Tracker, categoryTitle string) error {
	return s.withTx("update", "tracker", func(q querier) error {
		ok, err := trackerExists(q, t.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("update", "tracker", t.ID.String())
		}
		if _, err := ensureCategory(q, categoryTitle); err != nil {
			return err
		}
		_, err = q.Exec(`
			UPDATE trackers
			SET name = ?, color_hex = ?, emoji = ?, schedule_mask = ?, category_title = ?
			WHERE id = ?`,
			t.Name, t.ColorHex, t.Emoji, int(t.Schedule.Mask()), categoryTitle, t.ID.String(),
		)
		return err
	})
}

func (s *Store) DeleteTracker(id uuid.UUID) error {
	return s.withTx("delete", "tracker", func(q querier) error {
		res, err := q.Exec("DELETE FROM trackers WHERE id = ?", id.String())
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.NotFound("delete", "tracker", id.String())
		}
		_, err = q.Exec("DELETE FROM completion_records WHERE tracker_id = ?", id.String())
		return err
	})
}

func (s *Store) SetTrackerCategory(id uuid.UUID, title string) error {
	return s.withTx("set category", "tracker", func(q querier) error {
		ok, err := trackerExists(q, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("set category", "tracker", id.String())
		}
		if _, err := ensureCategory(q, title); err != nil {
			return err
		}
		_, err = q.Exec("UPDATE trackers SET category_title = ? WHERE id = ?", title, id.String())
		return err
	})
}

func (s *Store) Snapshot() ([]models.SnapshotItem, error) {
	if err := s.ready("snapshot", "tracker"); err != nil {
		return nil, err
	}
	rows, err := s.conn().Query(selectItems)
	if err != nil {
		return nil, apperrors.Persistence("snapshot", "tracker", err)
	}
	defer rows.Close()

	var items []models.SnapshotItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Persistence("snapshot", "tracker", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence("snapshot", "tracker", err)
	}
	storage.SortSnapshot(items)
	return items, nil
}
