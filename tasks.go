package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// listTasks returns the caller's tasks. Filter and sort parameters are
// validated inside the store; anything unknown is ignored or defaulted.
func (s *server) listTasks(c echo.Context) error {
	caller := identity(c)

	tasks, err := s.tasks.list(caller.UserID, taskFilter{
		Status:     c.QueryParam("status"),
		CategoryID: c.QueryParam("category_id"),
		SortBy:     c.QueryParam("sort_by"),
		Order:      c.QueryParam("order"),
	})
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// validateTaskRequest checks the shared create/update fields. It returns the
// cleaned title and description, or a non-empty message describing the first
// violation.
func validateTaskRequest(req *taskRequest) (title, description, problem string) {
	title = cleanString(req.Title)
	description = cleanString(req.Description)

	switch {
	case title == "":
		return "", "", "title required"
	case !isValidLength(title, 1, 255):
		return "", "", "title too long"
	case !isValidDate(req.Deadline):
		return "", "", "deadline must be YYYY-MM-DD"
	}
	return title, description, ""
}

// checkCategoryRef enforces that a referenced category belongs to the
// caller. A zero id means "no category" and always passes.
func (s *server) checkCategoryRef(userID, categoryID int) (bool, error) {
	if categoryID <= 0 {
		return true, nil
	}
	return s.categories.owned(userID, categoryID)
}

func (s *server) createTask(c echo.Context) error {
	caller := identity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title, description, problem := validateTaskRequest(&req)
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	ok, err := s.checkCategoryRef(caller.UserID, req.CategoryID)
	if err != nil {
		return s.internalError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	task, err := s.tasks.create(caller.UserID, req.CategoryID, title, description, req.Deadline)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *server) updateTask(c echo.Context) error {
	caller := identity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	title, description, problem := validateTaskRequest(&req)
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	status := req.Status
	if status == "" {
		status = StatusTodo
	}
	if !taskStatuses[status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	ok, err := s.checkCategoryRef(caller.UserID, req.CategoryID)
	if err != nil {
		return s.internalError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	task, err := s.tasks.update(caller.UserID, req.ID, req.CategoryID, title, description, req.Deadline, status)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *server) deleteTask(c echo.Context) error {
	caller := identity(c)

	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}

	err = s.tasks.delete(caller.UserID, id)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
