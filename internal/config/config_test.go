package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Setenv("CLOUDFLARE_API_TOKEN", "")
	t.Setenv("CLOUDFLARE_API_KEY", "")
	t.Setenv("CLOUDFLARE_EMAIL", "")
	os.Unsetenv("CLOUDFLARE_API_TOKEN")
	os.Unsetenv("CLOUDFLARE_API_KEY")
	os.Unsetenv("CLOUDFLARE_EMAIL")
}

func TestLoad_EnvToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDFLARE_API_TOKEN", "tok")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Credentials.APIToken != "tok" {
		t.Errorf("APIToken = %q, want %q", cfg.Credentials.APIToken, "tok")
	}
}

func TestLoad_KeyAndEmail(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDFLARE_API_KEY", "key")
	t.Setenv("CLOUDFLARE_EMAIL", "ops@example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Credentials.APIKey != "key" || cfg.Credentials.Email != "ops@example.com" {
		t.Errorf("unexpected credentials: %+v", cfg.Credentials)
	}
}

func TestLoad_NoCredentials(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Load() error = %v, want ErrNoCredentials", err)
	}
}

func TestLoad_PartialCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDFLARE_API_KEY", "key")

	_, err := Load("")
	if !errors.Is(err, ErrPartialCredentials) {
		t.Errorf("Load() error = %v, want ErrPartialCredentials", err)
	}
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("credentials:\n  api_token: file-token\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Credentials.APIToken != "file-token" {
		t.Errorf("APIToken = %q, want %q", cfg.Credentials.APIToken, "file-token")
	}

	t.Setenv("CLOUDFLARE_API_TOKEN", "env-token")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Credentials.APIToken != "env-token" {
		t.Errorf("APIToken = %q, want env override %q", cfg.Credentials.APIToken, "env-token")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("credentials: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load() expected error for malformed yaml")
	}
}
