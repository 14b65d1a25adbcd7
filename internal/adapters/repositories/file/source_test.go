package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

const fleetYAML = `
machines:
  - id: haas_vf2
    name: Haas VF-2
    kind: MILL
    x_max: 762
    y_max: 406
    z_max: 508
    spindle_power_hp: 30
  - id: spare_laser
    name: Spare Laser
    kind: LASER
    disabled: true
`

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fleetYAML), 0644))

	defs, err := NewSource(path).Load()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "haas_vf2", defs[0].ID)
	assert.Equal(t, models.KindMill, defs[0].Kind)
	assert.Equal(t, 762.0, defs[0].Limits().X.Max)
	assert.Equal(t, 30.0, defs[0].SpindlePowerHP)
	assert.True(t, defs[1].Disabled)
	assert.Equal(t, 1, defs[1].Position)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("machines:\n  - id: a\n    spindle_rpm: 9000\n"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	defs, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}
