// tokengen prints the access token for an identifier, for handing out to
// callers of the lookup endpoint.
//
//	tokengen -identifier 12345678 [-secret s3cret]
//
// The secret defaults to the SECRET_KEY environment variable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/spec-kit/driver-registry/internal/auth"
)

func main() {
	_ = godotenv.Load()

	identifier := flag.String("identifier", "", "identifier to sign (required)")
	secret := flag.String("secret", os.Getenv("SECRET_KEY"), "shared secret (defaults to SECRET_KEY)")
	flag.Parse()

	if *identifier == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *secret == "" {
		log.Fatal("secret is required: pass -secret or set SECRET_KEY")
	}

	fmt.Println(auth.NewSigner(*secret).Sign(*identifier))
}
