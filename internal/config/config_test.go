package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("expected default port 3001, got %d", cfg.Server.Port)
	}
	if cfg.AI.DefaultProvider != "openai" {
		t.Errorf("expected default provider openai, got %q", cfg.AI.DefaultProvider)
	}
	if cfg.AI.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default openai model: %q", cfg.AI.OpenAI.Model)
	}
	if cfg.AI.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected default gemini model: %q", cfg.AI.Gemini.Model)
	}
	if cfg.Server.StaticDir != "dist" {
		t.Errorf("unexpected default static dir: %q", cfg.Server.StaticDir)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/preshub_test")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("PORT should override the default, got %d", cfg.Server.Port)
	}
	if cfg.Database.ConnectionString != "postgres://localhost/preshub_test" {
		t.Errorf("DATABASE_URL not bound: %q", cfg.Database.ConnectionString)
	}
	if cfg.AI.OpenAI.APIKey != "sk-test" {
		t.Errorf("OPENAI_API_KEY not bound: %q", cfg.AI.OpenAI.APIKey)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Server: Server{Port: 3001}, AI: AI{DefaultProvider: "openai"}}, false},
		{"gemini default", Config{Server: Server{Port: 3001}, AI: AI{DefaultProvider: "gemini"}}, false},
		{"empty provider", Config{Server: Server{Port: 3001}}, false},
		{"unknown provider", Config{Server: Server{Port: 3001}, AI: AI{DefaultProvider: "claude"}}, true},
		{"zero port", Config{AI: AI{DefaultProvider: "openai"}}, true},
		{"port out of range", Config{Server: Server{Port: 70000}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
