package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"rateLimit": map[string]any{
			"window": "1h",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "RATELIMIT_WINDOW", want: "rateLimit.window"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsPipelineSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Dispatch.GatewayTimeout != defaultDispatchTimeout {
		t.Fatalf("GatewayTimeout = %v, want %v", cfg.Dispatch.GatewayTimeout, defaultDispatchTimeout)
	}
	if cfg.Dispatch.BatchSize != defaultDispatchBatchSize {
		t.Fatalf("BatchSize = %d, want %d", cfg.Dispatch.BatchSize, defaultDispatchBatchSize)
	}
	if cfg.RateLimit.Window != defaultRateLimitWindow {
		t.Fatalf("Window = %v, want %v", cfg.RateLimit.Window, defaultRateLimitWindow)
	}
	if cfg.Scheduler.PollInterval != defaultSchedulerInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.Scheduler.PollInterval, defaultSchedulerInterval)
	}
}
