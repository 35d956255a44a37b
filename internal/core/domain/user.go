package domain

// User models an account known to the remote service, as returned by the
// user listing and registration endpoints.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
