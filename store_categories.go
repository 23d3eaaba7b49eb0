package main

import (
	"database/sql"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// categoryStore persists categories. Like tasks, every operation is scoped
// to the owner's id.
type categoryStore struct {
	db *sql.DB
}

const categorySelect = `SELECT c.id, c.user_id, c.name, c.color, c.created_at, COUNT(t.id)
	FROM categories c
	LEFT JOIN tasks t ON c.id = t.category_id`

// list returns the user's categories with the number of tasks referencing
// each one. Ordering happens here rather than in SQL: the collator compares
// names case- and accent-insensitively ("école" sorts with "ecole"), which
// holds regardless of the server's collation settings.
func (s *categoryStore) list(userID int) ([]Category, error) {
	rows, err := s.db.Query(categorySelect+" WHERE c.user_id = ? GROUP BY c.id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.TaskCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	coll := collate.New(language.Und, collate.Loose)
	sort.SliceStable(categories, func(i, j int) bool {
		return coll.CompareString(categories[i].Name, categories[j].Name) < 0
	})
	return categories, nil
}

// get re-reads one category with its task count, used after writes.
func (s *categoryStore) get(id int) (*Category, error) {
	row := s.db.QueryRow(categorySelect+" WHERE c.id = ? GROUP BY c.id", id)
	var c Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.TaskCount)
	if err == sql.ErrNoRows {
		return nil, errNoRow
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// owned reports whether the category exists and belongs to userID. Task
// writes use it to keep category references inside the caller's own data.
func (s *categoryStore) owned(userID, id int) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM categories WHERE id = ? AND user_id = ?", id, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *categoryStore) create(userID int, name, color string) (*Category, error) {
	res, err := s.db.Exec("INSERT INTO categories (user_id, name, color) VALUES (?, ?, ?)",
		userID, name, color)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.get(int(id))
}

func (s *categoryStore) update(userID, id int, name, color string) (*Category, error) {
	res, err := s.db.Exec("UPDATE categories SET name = ?, color = ? WHERE id = ? AND user_id = ?",
		name, color, id, userID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errNoRow
	}
	return s.get(id)
}

// delete removes an owned category, then detaches the caller's tasks that
// referenced it so they become uncategorized. The foreign key's ON DELETE
// SET NULL does the same in MySQL; the explicit update keeps the behavior
// with engines that do not enforce the action.
func (s *categoryStore) delete(userID, id int) error {
	res, err := s.db.Exec("DELETE FROM categories WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNoRow
	}
	_, err = s.db.Exec("UPDATE tasks SET category_id = NULL WHERE category_id = ? AND user_id = ?", id, userID)
	return err
}
