// Where: cli/internal/domain/session/user.go
// What: Authenticated user identity.
// Why: Shared identity value returned by session providers and referenced by contexts.
package session

// User is the identity behind the current session.
type User struct {
	ID             string `yaml:"id" json:"id"`
	Username       string `yaml:"username" json:"username"`
	PrimaryAccount string `yaml:"primary_account,omitempty" json:"primaryAccount,omitempty"`
}
