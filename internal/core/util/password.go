package util

import "golang.org/x/crypto/bcrypt"

// DummyHash is a valid bcrypt hash of an unused password. Login compares
// against it when the email is unknown so both miss paths cost a bcrypt
// verification and stay indistinguishable by timing.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func CheckPassword(password, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
