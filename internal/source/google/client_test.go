package google

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRequiresSpreadsheetID(t *testing.T) {
	if _, err := New(context.Background(), Config{CredentialsJSON: "{}"}, nil); err == nil {
		t.Fatalf("expected error without spreadsheet id")
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	b, err := loadCredentials(Config{CredentialsJSON: ` {"type":"service_account"} `, CredentialsFile: "/nope"})
	if err != nil || string(b) != `{"type":"service_account"}` {
		t.Fatalf("inline json should win, got %q %v", b, err)
	}

	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, []byte(`{"k":1}`), 0o600); err != nil {
		t.Fatal(err)
	}
	b, err = loadCredentials(Config{CredentialsFile: path})
	if err != nil || string(b) != `{"k":1}` {
		t.Fatalf("file credentials: %q %v", b, err)
	}

	if _, err := loadCredentials(Config{CredentialsFile: filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Fatalf("expected read error")
	}
	if _, err := loadCredentials(Config{}); err == nil {
		t.Fatalf("expected missing credentials error")
	}

	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", path)
	if b, err := loadCredentials(Config{}); err != nil || string(b) != `{"k":1}` {
		t.Fatalf("ADC fallback: %q %v", b, err)
	}
}

func TestReadRangeDefaultsSheet(t *testing.T) {
	c := &Client{sheet: DefaultSheetName}
	if got := c.readRange(); got != "Movimientos!A:E" {
		t.Fatalf("range = %q", got)
	}
}
