package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"
)

// NewUser builds a user-shaped struct with generated field values. Unless
// the caller supplies one, PasswordHash is set to a real bcrypt hash of
// "12345678" so login flows work against factory users.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasPasswordHash := false

	for _, data := range customData {
		if _, exists := data["PasswordHash"]; exists {
			hasPasswordHash = true
			break
		}
	}

	if !hasPasswordHash {
		hash, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)

		customData = append(customData, map[string]any{
			"PasswordHash": string(hash),
		})
	}

	return instance.Build(customData...)
}
