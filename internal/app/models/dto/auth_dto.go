package dto

// AdminLoginRequest is the admin login payload (admins log in by username)
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the mentor/student login payload (login by email)
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated identity
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
