package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// listCategories returns the caller's categories, each with the number of
// tasks referencing it, ordered by name.
func (s *server) listCategories(c echo.Context) error {
	caller := identity(c)

	categories, err := s.categories.list(caller.UserID)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *server) createCategory(c echo.Context) error {
	caller := identity(c)

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := cleanString(req.Name)
	color := cleanString(req.Color)
	if color == "" {
		color = DefaultCategoryColor
	}
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if !isValidLength(name, 1, 100) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name too long"})
	}
	if !isValidColor(color) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "color must be a hex value like #3B82F6"})
	}

	category, err := s.categories.create(caller.UserID, name, color)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (s *server) updateCategory(c echo.Context) error {
	caller := identity(c)

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := cleanString(req.Name)
	color := cleanString(req.Color)
	if req.ID <= 0 || name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and name required"})
	}
	if !isValidLength(name, 1, 100) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name too long"})
	}
	if !isValidColor(color) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "color must be a hex value like #3B82F6"})
	}

	category, err := s.categories.update(caller.UserID, req.ID, name, color)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (s *server) deleteCategory(c echo.Context) error {
	caller := identity(c)

	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}

	err = s.categories.delete(caller.UserID, id)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "category deleted"})
}
