package auth

import "errors"

var (
	ErrUsernameRequired = errors.New("auth: username required")
	ErrPasswordRequired = errors.New("auth: password required")
)

// Credentials is the single admin username/password pair. Comparison
// is exact string equality; the pair is stored as-is.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DefaultCredentials seeds the auth bucket on first run.
func DefaultCredentials() Credentials {
	return Credentials{Username: "admin", Password: "admin"}
}

// Match reports whether both fields equal the stored pair exactly.
func (c Credentials) Match(username, password string) bool {
	return username == c.Username && password == c.Password
}

// Validate applies the required-field checks of the settings form.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return ErrUsernameRequired
	}
	if c.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}
