package backend

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"contabilidad/internal/config"
	applog "contabilidad/internal/log"
)

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Output: &bytes.Buffer{}})
}

func TestCreateMemoryBackendSample(t *testing.T) {
	f := NewFactory(quietLogger())
	res, err := f.CreateBackend(context.Background(), Config{Type: MemoryBackend, DataDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Cache != nil || res.Cleanup != nil {
		t.Fatalf("memory backend should not need cache or cleanup")
	}
	items, err := res.Source.ListMovements(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected sample movements, got %d", len(items))
	}
}

func TestCreateMemoryBackendBadSeed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "seed_movements.txt"), []byte("1|x|10|01 Feb|BOGUS\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFactory(quietLogger())
	if _, err := f.CreateBackend(context.Background(), Config{Type: MemoryBackend, DataDirectory: dir}); err == nil {
		t.Fatalf("expected seed error")
	}
}

func TestCreateBackendInvalid(t *testing.T) {
	f := NewFactory(quietLogger())
	if _, err := f.CreateBackend(context.Background(), Config{Type: "sqlite"}); err == nil {
		t.Fatalf("expected invalid type error")
	}
	if _, err := f.CreateBackend(context.Background(), Config{Type: SheetsBackend}); err == nil {
		t.Fatalf("expected missing spreadsheet error")
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected nil config error")
	}
	cfg := &config.Config{DataBackend: "sheets", GoogleSpreadsheetID: "abc", GoogleMovementsSheetName: "Mov", DataDir: "d"}
	bc, err := FromAppConfig(cfg)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if bc.Type != SheetsBackend || bc.GoogleSheetName != "Mov" || bc.DataDirectory != "d" {
		t.Fatalf("unexpected %+v", bc)
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "sqlite"}); err == nil {
		t.Fatalf("expected invalid backend error")
	}
}

func TestGetBackendTypeStrings(t *testing.T) {
	got := GetBackendTypeStrings()
	if len(got) != 2 || got[0] != "memory" || got[1] != "sheets" {
		t.Fatalf("unexpected %v", got)
	}
}
