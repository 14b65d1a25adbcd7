package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/entities"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

type memoryRepo struct {
	defs     []entities.MachineDefinition
	countErr error
}

func (m *memoryRepo) Load() ([]entities.MachineDefinition, error) { return m.defs, nil }

func (m *memoryRepo) Save(def *entities.MachineDefinition) error {
	m.defs = append(m.defs, *def)
	return nil
}

func (m *memoryRepo) Count() (int64, error) { return int64(len(m.defs)), m.countErr }

func quiet() *logging.Logger {
	return logging.NewLogger(&logging.Config{Enabled: false}, "")
}

func TestSeedDefaults_EmptyTable(t *testing.T) {
	repo := &memoryRepo{}
	require.NoError(t, SeedDefaults(repo, quiet()))

	require.Len(t, repo.defs, len(entities.DefaultFleet()))
	for i, def := range repo.defs {
		assert.Equal(t, i, def.Position)
	}
	assert.Equal(t, "cnc_lathe", repo.defs[3].ID)
	assert.Equal(t, 300.0, repo.defs[3].XMax)
}

func TestSeedDefaults_KeepsExisting(t *testing.T) {
	repo := &memoryRepo{defs: []entities.MachineDefinition{{ID: "custom"}}}
	require.NoError(t, SeedDefaults(repo, quiet()))
	assert.Len(t, repo.defs, 1)
}

func TestSeedDefaults_CountError(t *testing.T) {
	repo := &memoryRepo{countErr: errors.New("relation does not exist")}
	assert.Error(t, SeedDefaults(repo, quiet()))
}
