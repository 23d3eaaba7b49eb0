package main

import "database/sql"

// userStore persists accounts. Every query is parameterized; lookups used
// for login only consider active accounts.
type userStore struct {
	db *sql.DB
}

const userColumns = "id, username, email, password, role, active, created_at"

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.Active, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errNoRow
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// byUsername fetches an active account for a login attempt.
func (s *userStore) byUsername(username string) (*User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ? AND active = 1", username)
	return scanUser(row)
}

func (s *userStore) byID(id int) (*User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// taken reports whether another account already uses the username or email.
// excludeID skips the caller's own row on profile updates; pass 0 at
// registration.
func (s *userStore) taken(username, email string, excludeID int) (bool, error) {
	var id int
	err := s.db.QueryRow("SELECT id FROM users WHERE (username = ? OR email = ?) AND id != ? LIMIT 1",
		username, email, excludeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// create inserts a regular active account and returns its id.
func (s *userStore) create(username, email, passwordHash string) (int, error) {
	res, err := s.db.Exec("INSERT INTO users (username, email, password, role) VALUES (?, ?, ?, 'user')",
		username, email, passwordHash)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (s *userStore) passwordHash(id int) (string, error) {
	var hash string
	err := s.db.QueryRow("SELECT password FROM users WHERE id = ?", id).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", errNoRow
	}
	return hash, err
}

func (s *userStore) updatePassword(id int, passwordHash string) error {
	_, err := s.db.Exec("UPDATE users SET password = ? WHERE id = ?", passwordHash, id)
	return err
}

func (s *userStore) updateProfile(id int, username, email string) error {
	_, err := s.db.Exec("UPDATE users SET username = ?, email = ? WHERE id = ?", username, email, id)
	return err
}

// deleteCascade removes the account and everything it owns: tasks first,
// then categories, then the user row, so referential constraints hold at
// every step. Each statement is its own transaction; a crash mid-cascade can
// leave orphans, which is an accepted gap.
func (s *userStore) deleteCascade(id int) error {
	if _, err := s.db.Exec("DELETE FROM tasks WHERE user_id = ?", id); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM categories WHERE user_id = ?", id); err != nil {
		return err
	}
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
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
