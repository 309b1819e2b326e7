package request

// Validation stays permissive on purpose: the API accepts short or empty
// credentials at registration time and only caps lengths. Tightening this
// would reject payloads the service historically accepted.

type RegisterRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	FullName string `json:"fullName" validate:"max=255"`
	Password string `json:"password" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=100"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description" validate:"max=1000"`
}
