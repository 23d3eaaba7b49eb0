package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// userPayload is the user shape embedded in auth responses.
func userPayload(u *User) echo.Map {
	return echo.Map{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}
}

// handleAuth dispatches /auth?action=... the way the original API did.
func (s *server) handleAuth(c echo.Context) error {
	switch c.QueryParam("action") {
	case "login":
		return s.login(c)
	case "register":
		return s.register(c)
	case "logout":
		return s.logout(c)
	case "me":
		return s.me(c)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid action"})
	}
}

// login checks the credentials against an active account and returns a fresh
// token. Unknown username and wrong password answer identically.
func (s *server) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	username := cleanString(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password required"})
	}

	user, err := s.users.byUsername(username)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := s.tokens.issue(user.ID, user.Username)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": userPayload(user)})
}

// register creates a regular account and logs it in immediately.
func (s *server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	username := cleanString(req.Username)
	email := cleanString(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, email and password required"})
	}
	if !isValidLength(username, 1, 50) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username too long"})
	}
	if !isValidEmail(email) || !isValidLength(email, 1, 100) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}
	if len(req.Password) < minPasswordLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
	}

	taken, err := s.users.taken(username, email, 0)
	if err != nil {
		return s.internalError(c, err)
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already taken"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.internalError(c, err)
	}

	id, err := s.users.create(username, email, string(hash))
	if isDuplicateEntry(err) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already taken"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	token, err := s.tokens.issue(id, username)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":       id,
			"username": username,
			"email":    email,
			"role":     "user",
		},
	})
}

// logout has no server-side effect; tokens stay valid until expiry and the
// client simply discards its copy.
func (s *server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// me re-reads the caller's account. The route is unprotected; the handler
// authenticates itself so the action dispatch stays uniform.
func (s *server) me(c echo.Context) error {
	claims := s.authenticate(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	user, err := s.users.byID(claims.UserID)
	if errors.Is(err, errNoRow) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, userPayload(user))
}
