// Command tokengen prints a bearer token accepted by the /api/v1 routes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"identity_backend/internal/app/config"
	jwtmw "identity_backend/internal/platform/jwt"
)

func main() {
	_ = godotenv.Load(".env")

	// JWT_SECRET / JWT_TTL をサーバーと同じ環境変数から読む
	var jwtCfg config.JWTConfig
	if err := cleanenv.ReadEnv(&jwtCfg); err != nil {
		slog.Error("failed to read JWT config", "error", err)
		os.Exit(1)
	}

	subject := flag.String("subject", "", "Subject of the token (API client or operator id)")
	secret := flag.String("secret", jwtCfg.Secret, "Secret key for signing the token (default: $JWT_SECRET)")
	expiry := flag.Duration("expiry", jwtCfg.TTL, "Token expiry duration (e.g., 30m, 1h, 24h)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Error: -subject is required")
		flag.Usage()
		os.Exit(2)
	}

	token, err := jwtmw.NewGenerator(*secret, *expiry).GenerateToken(*subject)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
