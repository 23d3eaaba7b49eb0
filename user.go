package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// updateUser changes the caller's password and/or username+email. Both
// changes can ride in one request; each pair is only processed when both of
// its fields are present, matching the original API.
func (s *server) updateUser(c echo.Context) error {
	caller := identity(c)

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if req.CurrentPassword != "" || req.NewPassword != "" {
		if req.CurrentPassword == "" || req.NewPassword == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "current and new password required"})
		}
		hash, err := s.users.passwordHash(caller.UserID)
		if errors.Is(err, errNoRow) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		if err != nil {
			return s.internalError(c, err)
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.CurrentPassword)) != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password incorrect"})
		}
		if len(req.NewPassword) < minPasswordLength {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
		}
		newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return s.internalError(c, err)
		}
		if err := s.users.updatePassword(caller.UserID, string(newHash)); err != nil {
			return s.internalError(c, err)
		}
	}

	if req.Username != "" || req.Email != "" {
		username := cleanString(req.Username)
		email := cleanString(req.Email)
		if username == "" || email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and email required"})
		}
		if !isValidLength(username, 1, 50) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username too long"})
		}
		if !isValidEmail(email) || !isValidLength(email, 1, 100) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
		}
		taken, err := s.users.taken(username, email, caller.UserID)
		if err != nil {
			return s.internalError(c, err)
		}
		if taken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already taken"})
		}
		err = s.users.updateProfile(caller.UserID, username, email)
		if isDuplicateEntry(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already taken"})
		}
		if err != nil {
			return s.internalError(c, err)
		}
	}

	user, err := s.users.byID(caller.UserID)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated",
		"user":    userPayload(user),
	})
}

// deleteUser removes the caller's account and everything it owns.
func (s *server) deleteUser(c echo.Context) error {
	caller := identity(c)

	err := s.users.deleteCascade(caller.UserID)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "account deleted"})
}
