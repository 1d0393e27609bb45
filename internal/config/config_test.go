package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative concurrency",
			config: Config{
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
		{
			name: "negative rate",
			config: Config{
				Gemini: GeminiConfig{RequestsPerMinute: -5},
			},
			wantErr: true,
		},
		{
			name: "watch without path",
			config: Config{
				Catalog: CatalogConfig{Watch: true},
			},
			wantErr: true,
		},
		{
			name: "unknown log format",
			config: Config{
				Logging: LoggingConfig{Format: "xml"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8501" {
		t.Errorf("Addr = %v, want :8501", cfg.Server.Addr)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 120*time.Second {
		t.Errorf("Gemini.Timeout = %v", cfg.Gemini.Timeout)
	}
	if cfg.Transcript.Timeout != 15*time.Second {
		t.Errorf("Transcript.Timeout = %v", cfg.Transcript.Timeout)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want 1", cfg.Performance.MaxConcurrent)
	}
	if cfg.Transcript.MaxRetries != 0 {
		t.Errorf("MaxRetries = %v, want 0", cfg.Transcript.MaxRetries)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret-key")
	t.Setenv(EnvFallbackKeys, "k2, ,k3")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: "127.0.0.1:9000"
  download_ttl: 5m

gemini:
  model: "gemini-2.0-flash"
  timeout: 30s
  requests_per_minute: 10

transcript:
  timeout: 5s
  languages: ["en", "hi"]

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %v", cfg.Server.Addr)
	}
	if cfg.Server.DownloadTTL != 5*time.Minute {
		t.Errorf("DownloadTTL = %v", cfg.Server.DownloadTTL)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %v", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 30*time.Second {
		t.Errorf("Gemini.Timeout = %v", cfg.Gemini.Timeout)
	}
	if cfg.Transcript.Timeout != 5*time.Second {
		t.Errorf("Transcript.Timeout = %v", cfg.Transcript.Timeout)
	}
	if len(cfg.Transcript.Languages) != 2 {
		t.Errorf("Languages = %v", cfg.Transcript.Languages)
	}

	keys := cfg.Gemini.APIKeys()
	want := []string{"secret-key", "k2", "k3"}
	if len(keys) != len(want) {
		t.Fatalf("APIKeys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("APIKeys()[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestLoadMissingAPIKeyIsNotFatal(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys()) != 0 {
		t.Errorf("APIKeys() = %v, want none", cfg.Gemini.APIKeys())
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NOTESCRAFT_TEST_VALUE=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NOTESCRAFT_TEST_VALUE", "")
	os.Unsetenv("NOTESCRAFT_TEST_VALUE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("NOTESCRAFT_TEST_VALUE"); got != "from-dotenv" {
		t.Errorf("NOTESCRAFT_TEST_VALUE = %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadDotEnv() should fail for a missing file")
	}
}
