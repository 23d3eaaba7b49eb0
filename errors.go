package main

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
)

// isDuplicateEntry reports whether err is MySQL's duplicate-key error
// (1062). The handlers pre-check uniqueness, but a concurrent insert can
// still hit the constraint, and that race must surface as a conflict, not a
// server error.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// internalError answers 500. The response only carries the underlying error
// text when debug mode is on; production responses stay generic.
func (s *server) internalError(c echo.Context, err error) error {
	c.Logger().Error(err)
	msg := "internal server error"
	if s.cfg.Server.Debug {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}
