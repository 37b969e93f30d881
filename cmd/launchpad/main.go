package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kelseyhightower/envconfig"
	"github.com/mkravets/launchpad/internal/api"
	"github.com/mkravets/launchpad/internal/db"
	"golang.org/x/oauth2"
)

type serviceConfig struct {
	Port         string `envconfig:"PORT" default:"8080"`
	DBPath       string `envconfig:"DB_PATH" default:"data/launchpad.db"`
	SecretKey    string `envconfig:"SECRET_KEY"`
	CookieSecure bool   `envconfig:"COOKIE_SECURE" default:"false"`

	OAuthGoogleClientID     string `envconfig:"OAUTH_GOOGLE_CLIENT_ID"`
	OAuthGoogleClientSecret string `envconfig:"OAUTH_GOOGLE_CLIENT_SECRET"`
	OAuthGoogleRedirectURL  string `envconfig:"OAUTH_GOOGLE_REDIRECT_URL"`
}

func main() {
	var config serviceConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	if err := validateSecretKey(config.SecretKey); err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	database, err := db.OpenSQLite(config.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, config.SecretKey, config.CookieSecure, oauthProviders(config))

	app := fiber.New(fiber.Config{
		AppName:               "Launchpad",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Launchpad listening on http://0.0.0.0:%s (db: %s)", config.Port, config.DBPath)
	if err := app.Listen(":" + config.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func validateSecretKey(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return errors.New("SECRET_KEY must be set")
	}
	if secret == "change_me_in_production" {
		return errors.New("SECRET_KEY uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return errors.New("SECRET_KEY must be at least 32 characters")
	}
	return nil
}

// oauthProviders builds the federated sign-in registry from whatever
// providers are fully configured; partially configured providers are skipped.
func oauthProviders(config serviceConfig) map[string]api.OAuthProvider {
	providers := make(map[string]api.OAuthProvider)
	if config.OAuthGoogleClientID != "" && config.OAuthGoogleClientSecret != "" && config.OAuthGoogleRedirectURL != "" {
		providers["google"] = api.OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     config.OAuthGoogleClientID,
				ClientSecret: config.OAuthGoogleClientSecret,
				RedirectURL:  config.OAuthGoogleRedirectURL,
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
					TokenURL: "https://oauth2.googleapis.com/token",
				},
			},
			UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		}
	}
	return providers
}
