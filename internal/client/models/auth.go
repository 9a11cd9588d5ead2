package models

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse is returned by login, register and the /me profile endpoint.
// AccessToken is empty on /me responses: the caller already holds it.
type AuthResponse struct {
	Status       string       `json:"status"`
	AccessToken  string       `json:"accessToken,omitempty"`
	UserID       string       `json:"userId"`
	Email        string       `json:"email"`
	FullName     string       `json:"fullName"`
	UserType     UserType     `json:"userType"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`
	CreatedAt    string       `json:"createdAt"`
}

// UserFromAuthResponse builds the session identity from an auth response.
func UserFromAuthResponse(resp *AuthResponse) *User {
	return &User{
		ID:           resp.UserID,
		Email:        resp.Email,
		Name:         resp.FullName,
		Type:         resp.UserType,
		AuthProvider: resp.AuthProvider,
	}
}
