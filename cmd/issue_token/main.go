package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/config"
	"github.com/stpnv0/EventHub/internal/domain"
)

// issue_token mints a bearer token for an existing user, signed with the
// server's configured secret.
func main() {
	userID := flag.String("user", "", "user id (uuid)")
	role := flag.String("role", string(domain.RoleStudent), "role: ADMIN or STUDENT")
	flag.String("config", "", "path to config file")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	r := domain.Role(*role)
	if !r.Valid() {
		log.Fatalf("unknown role %q", *role)
	}

	cfg := config.MustLoad()

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, err := issuer.Issue(domain.Identity{UserID: *userID, Role: r})
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
