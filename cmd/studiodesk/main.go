package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StudioDesk/internal/app"
	"github.com/stpnv0/StudioDesk/internal/config"
	"github.com/stpnv0/StudioDesk/internal/middleware"
)

const tokenTTL = 30 * 24 * time.Hour

func main() {
	cfg := config.MustLoad()

	// studiodesk token <subject> prints a bearer token for API clients.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(cfg, os.Args[2:]); err != nil {
			log.Fatalf("token: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func printToken(cfg *config.Config, args []string) error {
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is not set")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: studiodesk token <subject>")
	}

	token, err := middleware.IssueToken(cfg.Auth.JWTSecret, args[0], jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
