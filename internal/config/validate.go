package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Matching.validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}
	if err := c.Fraud.validate(); err != nil {
		return fmt.Errorf("fraud: %w", err)
	}
	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	if c.RateLimit.ClaimsPerMinute <= 0 {
		return fmt.Errorf("rate_limit: claims_per_minute must be > 0 (got %d)", c.RateLimit.ClaimsPerMinute)
	}

	return nil
}

func (m MatchingConfig) validate() error {
	if m.DefaultRejectThreshold < 0 || m.DefaultAutoMatchThreshold > 100 {
		return fmt.Errorf("thresholds must be within [0, 100] (got %v, %v)", m.DefaultRejectThreshold, m.DefaultAutoMatchThreshold)
	}
	if m.DefaultRejectThreshold >= m.DefaultAutoMatchThreshold {
		return fmt.Errorf("default_reject_threshold (%v) must be below default_auto_match_threshold (%v)",
			m.DefaultRejectThreshold, m.DefaultAutoMatchThreshold)
	}
	if m.GenerateConcurrency < 1 {
		return fmt.Errorf("generate_concurrency must be >= 1 (got %d)", m.GenerateConcurrency)
	}
	if m.RescanConcurrency < 1 {
		return fmt.Errorf("rescan_concurrency must be >= 1 (got %d)", m.RescanConcurrency)
	}
	return nil
}

func (f FraudConfig) validate() error {
	if f.MonthlyClaimLimit <= 0 {
		return fmt.Errorf("monthly_claim_limit must be > 0 (got %d)", f.MonthlyClaimLimit)
	}
	if f.RapidClaims24h <= 0 {
		return fmt.Errorf("rapid_claims_24h must be > 0 (got %d)", f.RapidClaims24h)
	}
	if f.HighRiskThreshold <= 0 || f.HighRiskThreshold > 100 {
		return fmt.Errorf("high_risk_threshold must be within (0, 100] (got %d)", f.HighRiskThreshold)
	}
	return nil
}

func (n NotificationConfig) validate() error {
	if n.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", n.QueueSize)
	}
	if n.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", n.Workers)
	}
	return nil
}
