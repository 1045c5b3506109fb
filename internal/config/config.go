// Package config loads the service configuration from environment
// variables, optionally hydrating secrets from Infisical.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	infisical "github.com/infisical/go-sdk"
)

// Config is immutable after Load; it is validated once at startup and
// passed by reference into constructors.
type Config struct {
	RPCEndpoint   string
	GRPCEndpoint  string
	IndexerDSN    string
	IndexerCACert string

	DiscordWebhookURL string

	Port           string
	FrontendOrigin string

	UpdateInterval time.Duration
	NotifyInterval time.Duration

	RedisURL      string
	RedisPassword string
}

func Load() Config {
	cfg := Config{
		RPCEndpoint:       envOr("PENUMBRA_RPC_ENDPOINT", "https://rpc-penumbra.radiantcommons.com"),
		GRPCEndpoint:      envOr("PENUMBRA_GRPC_ENDPOINT", "https://penumbra-1.radiantcommons.com"),
		IndexerDSN:        os.Getenv("PENUMBRA_INDEXER_ENDPOINT"),
		IndexerCACert:     os.Getenv("PENUMBRA_INDEXER_CA_CERT"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		Port:              envOr("PORT", "8080"),
		FrontendOrigin:    envOr("FRONTEND_ORIGIN", "*"),
		UpdateInterval:    time.Duration(envInt("UPDATE_INTERVAL_SECONDS", 30)) * time.Second,
		NotifyInterval:    time.Duration(envFloat("DISCORD_INTERVAL_HOURS", 3) * float64(time.Hour)),
		RedisURL:          os.Getenv("REDIS_URL"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
	}

	// If Infisical credentials are available, fetch secrets from Infisical
	clientID := os.Getenv("INFISICAL_CLIENT_ID")
	clientSecret := os.Getenv("INFISICAL_CLIENT_SECRET")
	if clientID != "" && clientSecret != "" {
		loadFromInfisical(&cfg, clientID, clientSecret)
	}

	return cfg
}

// Validate reports missing required values. A failure here is fatal at
// startup, never a runtime condition.
func (c Config) Validate() error {
	var missing []string
	if c.RPCEndpoint == "" {
		missing = append(missing, "PENUMBRA_RPC_ENDPOINT")
	}
	if c.DiscordWebhookURL == "" {
		missing = append(missing, "DISCORD_WEBHOOK_URL")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("UPDATE_INTERVAL_SECONDS must be positive, got %v", c.UpdateInterval)
	}
	if c.NotifyInterval <= 0 {
		return fmt.Errorf("DISCORD_INTERVAL_HOURS must be positive, got %v", c.NotifyInterval)
	}
	return nil
}

func loadFromInfisical(cfg *Config, clientID, clientSecret string) {
	siteURL := envOr("INFISICAL_SITE_URL",
		"http://infisical-infisical-standalone-infisical.infisical.svc.cluster.local:8080")
	projectID := os.Getenv("INFISICAL_PROJECT_ID")
	envSlug := envOr("INFISICAL_ENV", "prod")

	if projectID == "" {
		slog.Warn("INFISICAL_PROJECT_ID not set, skipping Infisical")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := infisical.NewInfisicalClient(ctx, infisical.Config{
		SiteUrl:          siteURL,
		AutoTokenRefresh: false,
	})

	_, err := client.Auth().UniversalAuthLogin(clientID, clientSecret)
	if err != nil {
		slog.Error("infisical auth failed", "error", err)
		return
	}

	secrets := map[string]*string{
		"DISCORD_WEBHOOK_URL":       &cfg.DiscordWebhookURL,
		"PENUMBRA_INDEXER_ENDPOINT": &cfg.IndexerDSN,
		"PENUMBRA_INDEXER_CA_CERT":  &cfg.IndexerCACert,
		"REDIS_PASSWORD":            &cfg.RedisPassword,
	}

	for key, target := range secrets {
		if *target != "" {
			continue // env var already set, skip
		}
		secret, err := client.Secrets().Retrieve(infisical.RetrieveSecretOptions{
			SecretKey:   key,
			Environment: envSlug,
			ProjectID:   projectID,
			SecretPath:  "/",
		})
		if err != nil {
			slog.Warn("failed to retrieve secret from infisical", "key", key, "error", err)
			continue
		}
		*target = secret.SecretValue
		slog.Info("loaded secret from infisical", "key", key)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid float in environment, using default", "key", key, "value", v)
	}
	return fallback
}
