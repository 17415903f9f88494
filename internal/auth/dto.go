package auth

// RegisterInput carries a new account request. Registered accounts are
// always non-admin; admin accounts only come from seeding.
type RegisterInput struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Password  string  `json:"password" validate:"required,min=6,max=128"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}
