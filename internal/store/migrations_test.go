package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The migration runner only picks up *.up.sql files, so everything in the
// migrations directory must follow that naming convention.
func TestMigrationFilesFollowNamingConvention(t *testing.T) {
	dir := filepath.Join("..", "..", "db", "migrations")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one migration file")
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			t.Errorf("unexpected directory %s in migrations dir", name)
			continue
		}
		if !strings.HasSuffix(name, ".up.sql") {
			t.Errorf("migration %s does not end in .up.sql and will be skipped", name)
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			t.Errorf("migration %s is empty", name)
		}
	}
}
