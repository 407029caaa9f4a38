package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"SERVER_PORT", "STORE_BACKEND", "DOCUMENT_BACKEND", "DOCUMENT_DIR", "DOCUMENTS_BUCKET",
		"CREDITOR_NAME", "CREDITOR_IBAN", "CREDITOR_BIC", "CREDITOR_ID",
		"MEMBER_DIRECTORY_URL", "MEMBER_DIRECTORY_TTL", "LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE",
	} {
		t.Setenv(v, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.StoreBackend != StoreMemory || cfg.DocumentBackend != DocumentsLocal {
		t.Errorf("backends = %q/%q, want memory/local", cfg.StoreBackend, cfg.DocumentBackend)
	}
	if cfg.MemberDirectoryTTL != 5*time.Minute {
		t.Errorf("MemberDirectoryTTL = %v, want %v", cfg.MemberDirectoryTTL, 5*time.Minute)
	}
	if cfg.HasMemberDirectory() {
		t.Error("member directory should not be configured by default")
	}
	if cfg.DefaultCreditor().ID != "" {
		t.Error("incomplete creditor profile must yield the zero creditor")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", "DynamoDB")
	t.Setenv("MEMBER_DIRECTORY_URL", "https://hooks.example.org/socis")
	t.Setenv("MEMBER_DIRECTORY_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 9090)
	}
	if cfg.StoreBackend != StoreDynamoDB {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, StoreDynamoDB)
	}
	if cfg.MemberDirectoryTTL != 90*time.Second {
		t.Errorf("MemberDirectoryTTL = %v, want %v", cfg.MemberDirectoryTTL, 90*time.Second)
	}
}

func TestLoad_ConfigFileOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREDITOR_NAME", "from env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
creditor:
  name: Associacio Cultural
  iban: ES9121000418450200051332
  bic: CAIXESBBXXX
  creditor_id: ES26000G12345678
document_backend: s3
documents_bucket: remeses
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c := cfg.DefaultCreditor()
	if c.Name != "Associacio Cultural" || c.ID != "ES26000G12345678" {
		t.Errorf("unexpected creditor %+v", c)
	}
	if cfg.DocumentBackend != DocumentsS3 || cfg.DocumentsBucket != "remeses" {
		t.Errorf("unexpected document backend %q bucket %q", cfg.DocumentBackend, cfg.DocumentsBucket)
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("unknown store backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "postgres")
		if _, err := Load(); err == nil {
			t.Error("Load should fail for an unknown store backend")
		}
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DOCUMENT_BACKEND", "s3")
		if _, err := Load(); err == nil {
			t.Error("Load should fail when DOCUMENTS_BUCKET is missing")
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		if _, err := Load(); err == nil {
			t.Error("Load should fail when CONFIG_FILE does not exist")
		}
	})
}
