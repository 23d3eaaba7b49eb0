package main

// credentialsRequest carries a login attempt.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerRequest carries a new account signup.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// taskRequest is the body of task create and update calls. ID and Status are
// only read on update; a zero CategoryID means "no category".
type taskRequest struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	CategoryID  int    `json:"category_id"`
	Status      string `json:"status"`
}

// categoryRequest is the body of category create and update calls.
type categoryRequest struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// profileRequest is the body of a profile update. The password pair and the
// username/email pair are independent; either or both may be present.
type profileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
