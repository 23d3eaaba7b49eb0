package main

// Task statuses. The database stores the raw string.
const (
	StatusTodo = "todo"
	StatusDone = "done"
)

var taskStatuses = map[string]bool{
	StatusTodo: true,
	StatusDone: true,
}

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

// User represents an account. The bcrypt hash and the active flag never
// appear in JSON responses.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	Active    bool   `json:"-"`
	CreatedAt string `json:"created_at"`
}

// Category groups tasks for one user. TaskCount is derived at query time and
// not persisted.
type Category struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	TaskCount int    `json:"task_count"`
	CreatedAt string `json:"created_at"`
}

// Task is a to-do item. CategoryID is nil for uncategorized tasks;
// CategoryName and CategoryColor are joined in from the categories table and
// follow the same nullability.
type Task struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	CategoryID    *int    `json:"category_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Deadline      *string `json:"deadline"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}
