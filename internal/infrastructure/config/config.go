package config

import (
	"log"
	"os"
	"strings"
)

// Placeholder fragment shipped in example env files. Keys still carrying
// it are treated as absent so a half-configured deploy silently falls
// back to the local backend instead of erroring against a fake project.
const placeholderSentinel = "COLE_SUA"

const (
	defaultPort        = "8080"
	defaultLocalDBPath = "serviceos.db"
	defaultCompanyName = "ServiceOS"
)

// Config holds everything read from the process environment. Loaded once
// at startup and passed down explicitly; there is no package-level
// instance.
type Config struct {
	Port string

	// Remote collaborator (Supabase). Both must be set and
	// non-placeholder for the remote backend to be selected.
	SupabaseURL     string
	SupabaseAnonKey string

	// Local backend storage file, used when the remote is not configured.
	LocalDBPath string

	// Presentation.
	CompanyName string

	// Static checkout links rendered by the paywall.
	CheckoutLinkMonthly string
	CheckoutLinkAnnual  string

	// Opt-in enforcement of value >= 0 and closeDate >= openDate.
	StrictOrderValidation bool
}

func Load() *Config {
	cfg := &Config{
		Port:                  getenvDefault("PORT", defaultPort),
		SupabaseURL:           strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		SupabaseAnonKey:       strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		LocalDBPath:           getenvDefault("LOCAL_DB_PATH", defaultLocalDBPath),
		CompanyName:           getenvDefault("COMPANY_NAME", defaultCompanyName),
		CheckoutLinkMonthly:   strings.TrimSpace(os.Getenv("CHECKOUT_LINK_MONTHLY")),
		CheckoutLinkAnnual:    strings.TrimSpace(os.Getenv("CHECKOUT_LINK_ANNUAL")),
		StrictOrderValidation: parseBoolEnv("STRICT_ORDER_VALIDATION"),
	}

	if cfg.RemoteConfigured() {
		log.Printf("[config] remote backend configured url=%s", cfg.SupabaseURL)
	} else {
		log.Printf("[config] remote backend not configured; using local storage at %s", cfg.LocalDBPath)
	}

	return cfg
}

// RemoteConfigured reports whether the Supabase collaborator should be
// used. Evaluated once at startup; the selection is static for the
// process lifetime.
func (c *Config) RemoteConfigured() bool {
	return IsRemoteConfigured(c.SupabaseURL, c.SupabaseAnonKey)
}

// IsRemoteConfigured applies the selection policy to a raw endpoint/key
// pair: both present, neither a placeholder.
func IsRemoteConfigured(url, key string) bool {
	if strings.TrimSpace(url) == "" || strings.TrimSpace(key) == "" {
		return false
	}
	if strings.Contains(url, placeholderSentinel) || strings.Contains(key, placeholderSentinel) {
		return false
	}
	return true
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
