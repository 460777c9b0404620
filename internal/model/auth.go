package model

// AccessToken is the object embedded in the jwt access token.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// SessionUserID marks the response as starting an authenticated session.
func (r LoginResponse) SessionUserID() string {
	return r.User.ID
}

type LogoutRequest struct{}

type LogoutResponse struct {
	Success bool `json:"success"`
}

// EndSession marks the response as terminating the session.
func (r LogoutResponse) EndSession() bool {
	return r.Success
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}
