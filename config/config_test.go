package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Reminder.Interval != 60*time.Second {
			t.Errorf("reminder interval = %v, want 60s", cfg.Reminder.Interval)
		}
		if cfg.Reminder.Channel != ChannelSMTP {
			t.Errorf("reminder channel = %q", cfg.Reminder.Channel)
		}
		if cfg.Database.Driver != DriverPostgres {
			t.Errorf("driver = %q", cfg.Database.Driver)
		}
	})

	t.Run("Env override", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("REMINDER_INTERVAL", "5s")
		t.Setenv("REMINDER_CHANNEL", "telegram")
		t.Setenv("HTTP_SERVER_ALLOWED_ORIGINS", "a.com, b.com,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Database.Driver != DriverSQLite {
			t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
		}
		if cfg.Reminder.Interval != 5*time.Second {
			t.Errorf("interval = %v, want 5s", cfg.Reminder.Interval)
		}
		if len(cfg.HTTPServer.AllowedOrigins) != 2 {
			t.Errorf("allowed origins = %v", cfg.HTTPServer.AllowedOrigins)
		}
	})

	t.Run("Unknown channel", func(t *testing.T) {
		t.Setenv("REMINDER_CHANNEL", "pigeon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown channel")
		}
	})
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "Valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"},
				{Name: "gemini", Enabled: true, Priority: 2, Model: "gemini-2.5-flash"},
			}},
		},
		{
			name:    "Duplicate priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1, Model: "m"}, {Name: "b", Enabled: true, Priority: 1, Model: "m"}}},
			wantErr: true,
		},
		{
			name:    "Missing model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "None enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "a", Priority: 1, Model: "m"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
