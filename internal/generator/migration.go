package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"

	"github.com/marceloribeiro/orbin/internal/infra/fs"
	"github.com/marceloribeiro/orbin/internal/pkg/naming"
)

// MigrationVersionFormat is the timestamp layout used for migration versions.
const MigrationVersionFormat = "20060102150405"

// NewMigration creates an up/down SQL migration pair under dir/db/migrations.
// Filenames follow <version>_<name>.up.sql where version is now in UTC.
// Each file carries a ULID revision id in its header so a migration can be
// identified even after being renamed.
func NewMigration(fsys afero.Fs, out io.Writer, dir, name string, now time.Time) ([]string, error) {
	clean := naming.Normalize(name)
	if clean == "" {
		return nil, fmt.Errorf("migration name %q contains no usable characters", name)
	}
	if dir == "" {
		dir = "."
	}

	version := now.UTC().Format(MigrationVersionFormat)
	revision := ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()
	base := filepath.Join(dir, "db", "migrations", version+"_"+clean)

	header := fmt.Sprintf("-- revision: %s\n-- migration: %s\n", revision, clean)
	files := map[string]string{
		base + ".up.sql":   header + "\n-- Write the forward migration here.\n",
		base + ".down.sql": header + "\n-- Write the rollback here.\n",
	}

	paths := []string{base + ".up.sql", base + ".down.sql"}
	for _, path := range paths {
		if fs.Exists(fsys, path) {
			return nil, fmt.Errorf("%s already exists", path)
		}
	}
	for _, path := range paths {
		if err := fs.WriteFileAtomic(fsys, path, []byte(files[path])); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(out, "WROTE: %s\n", path)
	}

	return paths, nil
}
