package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"parola"`
}

// LoginResponse token y datos mínimos del empleado autenticado.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"` // admin | angajat
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
}
