package migrations

import (
	"io/fs"
	"testing"
)

func TestFS_EachDriverHasMigrations(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{DriverPostgres, DriverSQLite} {
		fsys, err := FS(driver)
		if err != nil {
			t.Fatalf("FS(%q): %v", driver, err)
		}
		matches, err := fs.Glob(fsys, "*.sql")
		if err != nil {
			t.Fatalf("glob: %v", err)
		}
		if len(matches) == 0 {
			t.Fatalf("no migrations for %q", driver)
		}
	}
}

func TestFS_UnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := FS("mysql"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
