package models

// User is the mirrored user record kept in the document store under
// users/<uid>. The password hash never leaves the service; DTOs that face
// the client are built from UserSummary instead.
type User struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Residence    string `json:"residence,omitempty"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// UserSummary is the client-visible projection of a user record.
type UserSummary struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Residence string `json:"residence,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
