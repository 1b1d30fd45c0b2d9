package models

// Administrator is a staff user of the collections dashboard. Password
// is only populated on the way out of the identity store and is never
// serialized or kept on an authenticated session copy.
type Administrator struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// LoginRequest represents the request body for administrator login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string         `json:"token"`
	Admin *Administrator `json:"admin"`
}

// AdminUpdate is an explicit partial update of an administrator's
// credentials. Nil fields are left untouched.
type AdminUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u AdminUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil
}
