package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"pilealire/internal/library"
)

func setupEnv(t *testing.T, variant string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "database", "test.db"))
	t.Setenv("SEED_VARIANT", variant)
	return dir
}

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%s %v: %v", cmd.Name(), args, err)
	}
	return out.String()
}

func TestExport_WritesSeedOnFirstRun(t *testing.T) {
	setupEnv(t, "demo")

	out := run(t, newExportCommand())
	if out != library.ExportData(library.GetInitialData()) {
		t.Fatalf("export output differs from seed export:\n%s", out)
	}
}

func TestImportThenExport_RoundTrips(t *testing.T) {
	dir := setupEnv(t, "empty")

	doc := `{"books":[{"id":"b1","google_book_id":"g1","title":"Nana","status":"read","rating":3,"created_at":"2024-01-01T00:00:00.000Z","updated_at":"2024-01-01T00:00:00.000Z"}],"comments":[],"stats":[]}`
	path := filepath.Join(dir, "in.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	if out := run(t, newImportCommand(), path); !strings.Contains(out, "Imported 1 books") {
		t.Fatalf("import output = %q", out)
	}

	want, err := library.ImportData(doc)
	if err != nil {
		t.Fatalf("ImportData(): %v", err)
	}
	if out := run(t, newExportCommand()); out != library.ExportData(want) {
		t.Fatalf("export after import:\n%s", out)
	}
}

func TestImport_RejectsMalformedDocument(t *testing.T) {
	dir := setupEnv(t, "demo")

	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	cmd := newImportCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("import of malformed JSON succeeded")
	}

	if out := run(t, newExportCommand()); out != library.ExportData(library.GetInitialData()) {
		t.Fatal("malformed import changed the stored library")
	}
}

func TestExport_ToDirectoryUsesBackupName(t *testing.T) {
	dir := setupEnv(t, "empty")
	backups := filepath.Join(dir, "backups")
	if err := os.MkdirAll(backups, 0o755); err != nil {
		t.Fatalf("MkdirAll(): %v", err)
	}

	out := run(t, newExportCommand(), "--out", backups)
	if !strings.Contains(filepath.Base(strings.TrimSpace(out)), library.BackupFilePrefix) {
		t.Fatalf("export --out dir printed %q", out)
	}
	content, err := os.ReadFile(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("ReadFile(): %v", err)
	}
	if string(content) != library.ExportData(library.EmptyData()) {
		t.Fatalf("backup content = %s", content)
	}
}

func TestStats_PrintsStatusCounts(t *testing.T) {
	setupEnv(t, "demo")

	out := run(t, newStatsCommand())
	for _, want := range []string{"Livres lus: 2", "En cours: 2", "À lire: 2", "Classique: 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestReset_RestoresSeedAfterRemoval(t *testing.T) {
	dir := setupEnv(t, "demo")

	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	run(t, newImportCommand(), path)

	if out := run(t, newResetCommand()); !strings.Contains(out, "6 books") {
		t.Fatalf("reset output = %q", out)
	}

	run(t, newImportCommand(), path)
	run(t, newResetCommand(), "--clear")
	if out := run(t, newExportCommand()); out != library.ExportData(library.GetInitialData()) {
		t.Fatal("cleared slot was not re-seeded")
	}
}
