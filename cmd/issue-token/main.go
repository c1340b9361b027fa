// Command issue-token mints an access token for an existing teacher. Accounts
// are provisioned outside this service, so this is how operators and local
// setups obtain a bearer token.
//
// Usage:
//
//	issue-token --username=ivanova [--ttl=24h]
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/lessonbell-backend/internal/app"
	"github.com/heartmarshall/lessonbell-backend/internal/auth"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the teacher the token is issued for")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to auth.access_token_ttl)")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --username=ivanova [--ttl=24h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := app.OpenStorage(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	teacher, err := store.Teachers.GetByUsername(ctx, *username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No teacher found with username %q.\n", *username)
			os.Exit(1)
		}
		log.Fatalf("look up teacher: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).
		IssueToken(teacher.Username, teacher.Role.String())
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
