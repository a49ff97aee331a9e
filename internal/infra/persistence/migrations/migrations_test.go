package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestMigrationSourceReadsVersions(t *testing.T) {
	source, err := iofs.New(migrationsFS, "sql")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	count := 1
	for v := first; ; count++ {
		next, err := source.Next(v)
		if err != nil {
			break
		}
		v = next
	}
	assert.Equal(t, 4, count)
}

func TestPartialIndexesAreDeclared(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "sql/000003_create_offers_and_purchases.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "idx_car_offers_open_pair")
	assert.NotContains(t, string(body), "UNIQUE INDEX IF NOT EXISTS uq_car_offers_open")
	assert.Contains(t, string(body), "uq_purchases_active_offer")
	assert.Contains(t, string(body), "WHERE status <> 'CANCELLED'")
}
