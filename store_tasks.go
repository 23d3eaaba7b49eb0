package main

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// taskStore persists tasks. Every list and write carries the owner's id as a
// mandatory predicate, so a caller can never touch another user's rows.
type taskStore struct {
	db *sql.DB
}

// taskFilter carries the raw, client-supplied list parameters. Validation
// happens inside list: unknown values are ignored or replaced by defaults,
// never interpolated into the query text.
type taskFilter struct {
	Status     string
	CategoryID string
	SortBy     string
	Order      string
}

// Sort column and direction cannot be bound as parameters, so they are
// substituted from these fixed allow-lists before touching the SQL.
var taskSortColumns = map[string]string{
	"created_at": "t.created_at",
	"title":      "t.title",
	"deadline":   "t.deadline",
	"status":     "t.status",
}

var sortOrders = map[string]string{
	"ASC":  "ASC",
	"DESC": "DESC",
}

const taskColumns = `t.id, t.user_id, t.category_id, t.title, t.description,
		t.deadline, t.status, t.created_at, c.name, c.color`

const taskSelect = "SELECT " + taskColumns + `
	FROM tasks t
	LEFT JOIN categories c ON t.category_id = c.id`

func scanTask(scan func(...interface{}) error) (Task, error) {
	var (
		t           Task
		categoryID  sql.NullInt64
		description sql.NullString
		deadline    sql.NullString
		catName     sql.NullString
		catColor    sql.NullString
	)
	err := scan(&t.ID, &t.UserID, &categoryID, &t.Title, &description,
		&deadline, &t.Status, &t.CreatedAt, &catName, &catColor)
	if err != nil {
		return t, err
	}
	if categoryID.Valid {
		id := int(categoryID.Int64)
		t.CategoryID = &id
	}
	t.Description = description.String
	if deadline.Valid {
		d := deadline.String
		t.Deadline = &d
	}
	if catName.Valid {
		n := catName.String
		t.CategoryName = &n
	}
	if catColor.Valid {
		c := catColor.String
		t.CategoryColor = &c
	}
	return t, nil
}

// list returns the user's tasks with category display fields joined in.
//
// The category filter is three-way: absent (or non-numeric, or negative)
// adds no predicate, the literal 0 selects uncategorized tasks, and a
// positive id selects that category. Status outside the known set is
// ignored; sort_by and order fall back to created_at DESC.
func (s *taskStore) list(userID int, f taskFilter) ([]Task, error) {
	var sb strings.Builder
	sb.WriteString(taskSelect)
	sb.WriteString(" WHERE t.user_id = ?")
	args := []interface{}{userID}

	if taskStatuses[f.Status] {
		sb.WriteString(" AND t.status = ?")
		args = append(args, f.Status)
	}

	switch id, err := strconv.Atoi(f.CategoryID); {
	case f.CategoryID == "" || err != nil || id < 0:
		// no category predicate
	case id == 0:
		sb.WriteString(" AND t.category_id IS NULL")
	default:
		sb.WriteString(" AND t.category_id = ?")
		args = append(args, id)
	}

	column, ok := taskSortColumns[f.SortBy]
	if !ok {
		column = taskSortColumns["created_at"]
	}
	order, ok := sortOrders[strings.ToUpper(f.Order)]
	if !ok {
		order = "DESC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s", column, order)

	rows, err := s.db.Query(sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// get re-reads a single task with its category fields, used after writes.
func (s *taskStore) get(id int) (*Task, error) {
	row := s.db.QueryRow(taskSelect+" WHERE t.id = ?", id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errNoRow
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// create inserts a task owned by userID and returns the stored row. The
// owner always comes from the verified caller, never from the request body.
func (s *taskStore) create(userID, categoryID int, title, description, deadline string) (*Task, error) {
	res, err := s.db.Exec(`INSERT INTO tasks (user_id, category_id, title, description, deadline, status)
		VALUES (?, ?, ?, ?, ?, 'todo')`,
		userID, nullableID(categoryID), title, description, nullableString(deadline))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.get(int(id))
}

// update replaces the task's mutable fields. The predicate pairs the task id
// with the owner id; a wrong id or someone else's task yields errNoRow.
func (s *taskStore) update(userID, id, categoryID int, title, description, deadline, status string) (*Task, error) {
	res, err := s.db.Exec(`UPDATE tasks
		SET title = ?, description = ?, deadline = ?, category_id = ?, status = ?
		WHERE id = ? AND user_id = ?`,
		title, description, nullableString(deadline), nullableID(categoryID), status, id, userID)
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

func (s *taskStore) delete(userID, id int) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
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
	return nil
}
