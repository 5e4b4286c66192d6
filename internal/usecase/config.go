package usecase

import (
	"os"
	"strconv"
	"time"
)

// Config carries the tunable thresholds of the reconstruction and session
// layers. The defaults mirror the business defaults in force today; product
// has not confirmed them as hard requirements, so every one of them can be
// overridden by environment.
type Config struct {
	MaxPriceChange     float64 // max relative price delta per item before it is a violation
	MaxMarginChange    float64 // max margin delta per item before it is a violation
	MinStabilityScore  float64 // guard policy minimum for a safe change
	UpdateStability    float64 // session update / reconstruction acceptance threshold
	CriticalStability  float64 // below this the guard raises a stability_critical alert
	MarginMinimum      float64 // post-reconstruction minimum margin per item
	MarginMaximum      float64 // post-reconstruction maximum margin per item
	MaxSnapshots       int     // bounded session snapshot history
	SessionTimeout     time.Duration
	ProviderTimeout    time.Duration // bound on alternative-search calls
	MaxAlternatives    int           // cap on candidates considered per item
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MaxPriceChange:    0.15,
		MaxMarginChange:   0.10,
		MinStabilityScore: 0.70,
		UpdateStability:   0.80,
		CriticalStability: 0.50,
		MarginMinimum:     0.10,
		MarginMaximum:     0.60,
		MaxSnapshots:      10,
		SessionTimeout:    30 * time.Minute,
		ProviderTimeout:   5 * time.Second,
		MaxAlternatives:   20,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// the defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.MaxPriceChange = envFloat("BUDGET_MAX_PRICE_CHANGE", cfg.MaxPriceChange)
	cfg.MaxMarginChange = envFloat("BUDGET_MAX_MARGIN_CHANGE", cfg.MaxMarginChange)
	cfg.MinStabilityScore = envFloat("BUDGET_MIN_STABILITY_SCORE", cfg.MinStabilityScore)
	cfg.UpdateStability = envFloat("BUDGET_UPDATE_STABILITY", cfg.UpdateStability)
	cfg.CriticalStability = envFloat("BUDGET_CRITICAL_STABILITY", cfg.CriticalStability)
	cfg.MarginMinimum = envFloat("BUDGET_MARGIN_MINIMUM", cfg.MarginMinimum)
	cfg.MarginMaximum = envFloat("BUDGET_MARGIN_MAXIMUM", cfg.MarginMaximum)
	cfg.MaxSnapshots = envInt("SESSION_MAX_SNAPSHOTS", cfg.MaxSnapshots)
	cfg.SessionTimeout = envDuration("SESSION_TIMEOUT", cfg.SessionTimeout)
	cfg.ProviderTimeout = envDuration("PROVIDER_SEARCH_TIMEOUT", cfg.ProviderTimeout)
	cfg.MaxAlternatives = envInt("PROVIDER_MAX_ALTERNATIVES", cfg.MaxAlternatives)
	return cfg
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
