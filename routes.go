package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// newEcho builds the HTTP layer: middleware, routes, and the error shape.
// Everything the router rejects itself (unknown path, wrong verb) comes out
// as {"error": ...} like the handlers' own responses.
func newEcho(s *server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := "internal server error"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else if s.cfg.Server.Debug {
			message = err.Error()
		}
		c.JSON(code, echo.Map{"error": message})
	}

	e.Use(middleware.Recover())
	// CORS runs before auth so preflight requests are answered without a
	// token.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
		MaxAge:       3600,
	}))

	s.routes(e)
	return e
}

// routes registers every endpoint. Permission names mirror the resource
// operations; see can() for how they are enforced today.
func (s *server) routes(e *echo.Echo) {
	// /auth dispatches on ?action=; the "me" action authenticates itself.
	e.GET("/auth", s.handleAuth)
	e.POST("/auth", s.handleAuth)

	e.GET("/tasks", s.listTasks, s.can("view_tasks"))
	e.POST("/tasks", s.createTask, s.can("create_task"))
	e.PUT("/tasks", s.updateTask, s.can("edit_task"))
	e.DELETE("/tasks", s.deleteTask, s.can("delete_task"))

	e.GET("/categories", s.listCategories, s.can("view_categories"))
	e.POST("/categories", s.createCategory, s.can("create_category"))
	e.PUT("/categories", s.updateCategory, s.can("edit_category"))
	e.DELETE("/categories", s.deleteCategory, s.can("delete_category"))

	e.PUT("/user", s.updateUser, s.requireAuth)
	e.DELETE("/user", s.deleteUser, s.requireAuth)
}
