package main

import "errors"

// errNoRow reports an operation that matched no row the caller owns. The
// handlers translate it to 404 so an update or delete aimed at someone
// else's row never looks like a success.
var errNoRow = errors.New("no matching row")

// nullableID maps a zero or negative id to SQL NULL.
func nullableID(id int) interface{} {
	if id <= 0 {
		return nil
	}
	return id
}

// nullableString maps the empty string to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
