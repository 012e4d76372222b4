package cliparse

import (
	"testing"
)

func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("SESSION_TOKEN_SALT", "")
}

func TestParseFlags(t *testing.T) {
	baseEnv(t)

	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-d", "postgres://localhost/canvass",
		"-admin-email", "admin@example.com",
		"-admin-password-hash", "$2a$10$hash",
		"-session-salt", "salt",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/canvass" {
		t.Errorf("Unexpected database URL: %s", cfg.DatabaseURL)
	}
	if cfg.SubjectLimit != DefaultSubjectLimit {
		t.Errorf("Expected default subject limit %d, got %d", DefaultSubjectLimit, cfg.SubjectLimit)
	}
	if cfg.ListLimit != DefaultListLimit || cfg.ExportLimit != DefaultExportLimit {
		t.Errorf("Unexpected caps: list=%d export=%d", cfg.ListLimit, cfg.ExportLimit)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	baseEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/canvass")
	t.Setenv("ADMIN_EMAIL", "env@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("SESSION_TOKEN_SALT", "env-salt")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://env/canvass" {
		t.Errorf("Expected env database URL, got %s", cfg.DatabaseURL)
	}
	if cfg.AdminEmail != "env@example.com" {
		t.Errorf("Expected env admin email, got %s", cfg.AdminEmail)
	}
}

func TestParseFlagsMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database URL", env: map[string]string{
			"ADMIN_EMAIL": "a@b.c", "ADMIN_PASSWORD_HASH": "h", "SESSION_TOKEN_SALT": "s",
		}},
		{name: "missing admin email", env: map[string]string{
			"DATABASE_URL": "postgres://x", "ADMIN_PASSWORD_HASH": "h", "SESSION_TOKEN_SALT": "s",
		}},
		{name: "missing password hash", env: map[string]string{
			"DATABASE_URL": "postgres://x", "ADMIN_EMAIL": "a@b.c", "SESSION_TOKEN_SALT": "s",
		}},
		{name: "missing session salt", env: map[string]string{
			"DATABASE_URL": "postgres://x", "ADMIN_EMAIL": "a@b.c", "ADMIN_PASSWORD_HASH": "h",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(nil); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
