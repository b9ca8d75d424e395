package main

import (
	"fmt"
	"os"

	"prolinked-backend/pkg/auth"
)

// Prints bcrypt hashes for seeding admin accounts:
//
//	go run ./scripts/genhash.go 'first-password' 'second-password'
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>...")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Println(hash)
	}
}
