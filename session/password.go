package session

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password policy names accepted by PolicyFor
const (
	PolicyPlaceholder = "placeholder"
	PolicyBcrypt      = "bcrypt"
)

// PasswordPolicy hashes new passwords and decides whether a login attempt
// matches the stored hash
type PasswordPolicy interface {
	Hash(password string) (string, error)
	Check(hash, password string) bool
}

// PlaceholderPolicy accepts any non-empty password. It does not verify
// anything and must not be used where real credentials matter.
type PlaceholderPolicy struct{}

// Hash stores a bcrypt hash so switching to BcryptPolicy later keeps working
func (PlaceholderPolicy) Hash(password string) (string, error) {
	return hashPassword(password)
}

// Check ignores the stored hash
func (PlaceholderPolicy) Check(_, password string) bool {
	return password != ""
}

// BcryptPolicy compares the password against the stored bcrypt hash
type BcryptPolicy struct{}

// Hash returns the bcrypt hash of password
func (BcryptPolicy) Hash(password string) (string, error) {
	return hashPassword(password)
}

// Check fails for users that never had a password set
func (BcryptPolicy) Check(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PolicyFor returns the policy registered under name
func PolicyFor(name string) (PasswordPolicy, error) {
	switch name {
	case PolicyPlaceholder, "":
		return PlaceholderPolicy{}, nil
	case PolicyBcrypt:
		return BcryptPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown password policy %q", name)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
