package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the required institution fields and every owned program
func (i Institution) Validate() error {
	return validate.Struct(i)
}

// Validate checks a single program
func (p Program) Validate() error {
	return validate.Struct(p)
}

// Validate checks the user record
func (u User) Validate() error {
	return validate.Struct(u)
}

// Validate checks the profile patch
func (p UserPatch) Validate() error {
	return validate.Struct(p)
}
