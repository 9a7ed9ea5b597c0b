package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

func ensureCategory(q querier, title string) (models.Category, error) {
	var c models.Category
	err := q.QueryRow("SELECT id, title FROM categories WHERE title = ?", title).Scan(&c.ID, &c.Title)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, err
	}

	c = models.Category{ID: uuid.New(), Title: title}
	if _, err := q.Exec("INSERT INTO categories (id, title) VALUES (?, ?)", c.ID.String(), c.Title); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func categoryExists(q querier, title string) (bool, error) {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM categories WHERE title = ?", title).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) EnsureCategory(title string) (models.Category, error) {
	var c models.Category
	err := s.withTx("ensure", "category", func(q querier) error {
		var err error
		c, err = ensureCategory(q, title)
		return err
	})
	return c, err
}

func (s *Store) GetAllCategories() ([]models.Category, error) {
	if err := s.ready("list", "category"); err != nil {
		return nil, err
	}
	rows, err := s.conn().Query("SELECT id, title FROM categories ORDER BY title")
	if err != nil {
		return nil, apperrors.Persistence("list", "category", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, apperrors.Persistence("list", "category", err)
		}
		out = append(out, c)
	}
	return out, apperrors.Persistence("list", "category", rows.Err())
}

func (s *Store) RenameCategory(oldTitle, newTitle string) error {
	return s.withTx("rename", "category", func(q querier) error {
		ok, err := categoryExists(q, oldTitle)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("rename", "category", oldTitle)
		}
		if oldTitle == newTitle {
			return nil
		}
		taken, err := categoryExists(q, newTitle)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Exists("rename", newTitle)
		}

		if _, err := q.Exec("UPDATE categories SET title = ? WHERE title = ?", newTitle, oldTitle); err != nil {
			return err
		}
		_, err = q.Exec("UPDATE trackers SET category_title = ? WHERE category_title = ?", newTitle, oldTitle)
		return err
	})
}

func (s *Store) DeleteCategory(title string) error {
	return s.withTx("delete", "category", func(q querier) error {
		res, err := q.Exec("DELETE FROM categories WHERE title = ?", title)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.NotFound("delete", "category", title)
		}
		return nil
	})
}

// CountTrackers counts trackers whose resolved category is title. Orphaned
// trackers count toward Uncategorized.
func (s *Store) CountTrackers(title string) (int, error) {
	if err := s.ready("count", "category"); err != nil {
		return 0, err
	}
	var n int
	err := s.conn().QueryRow(`
		SELECT COUNT(*)
		FROM trackers t LEFT JOIN categories c ON c.title = t.category_title
		WHERE COALESCE(c.title, ?) = ?`, constants.UncategorizedTitle, title).Scan(&n)
	if err != nil {
		return 0, apperrors.Persistence("count", "category", err)
	}
	return n, nil
}
