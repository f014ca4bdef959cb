package main

import (
	"fmt"
	"os"

	"github.com/rwandapathways/pathways-api/session"
)

// Quick utility to give a user a bcrypt password, needed before switching
// PASSWORD_POLICY to bcrypt for accounts created without one
// Usage: go run scripts/fix_user_password.go <email> <password>
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/fix_user_password.go <email> <password>")
		fmt.Println("Example: go run scripts/fix_user_password.go counselor@ur.ac.rw 0i2rinbcp12yc31h")
		os.Exit(1)
	}

	email, password := os.Args[1], os.Args[2]

	hashedPassword, err := session.BcryptPolicy{}.Hash(password)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Bcrypt Hash: %s\n", hashedPassword)
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.users.updateOne(\n")
	fmt.Printf("  {\"email\": \"%s\"},\n", email)
	fmt.Printf("  {$set: {\"password\": \"%s\"}}\n", hashedPassword)
	fmt.Printf(")\n")
}
