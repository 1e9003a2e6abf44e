package migrations_test

import (
	"testing"

	"github.com/stokaro/ptah/migration/migrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/migrations"
)

func TestFS_CargaConPtah(t *testing.T) {
	provider, err := migrator.NewFSMigrationProvider(migrations.FS)
	require.NoError(t, err)

	list := provider.Migrations()
	require.NotEmpty(t, list)
	assert.Equal(t, 1, list[0].Version)
	assert.NotEmpty(t, list[0].Description)
	for i, m := range list {
		assert.Equal(t, i+1, m.Version, "versiones consecutivas")
		assert.NotNil(t, m.Up)
		assert.NotNil(t, m.Down)
	}
}
