package user

// Profile carries the fields collected by the registration form.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string
	Password string
}
