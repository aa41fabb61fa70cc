package database

import (
	"io/fs"
	"strings"
	"testing"

	"squadhr/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestMigrations_SeedCrucialStatuses(t *testing.T) {
	schema, err := fs.ReadFile(migrations, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	for _, name := range model.CrucialStatusNames() {
		assert.Contains(t, string(schema), "('"+name+"', TRUE)")
	}
}

func TestMigrations_CheckEveryRecruitmentStatus(t *testing.T) {
	schema, err := fs.ReadFile(migrations, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	for _, s := range model.RecruitmentStatuses() {
		assert.Contains(t, string(schema), "'"+string(s)+"'")
	}
}
