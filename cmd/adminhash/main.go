// Command adminhash generates the bcrypt hash for ADMIN_PASSWORD_HASH.
//
// Usage:
//
//	go run ./cmd/adminhash 'the-admin-password'
package main

import (
	"fmt"
	"os"

	"github.com/evenly-app/evenly/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password>\n", os.Args[0])
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
