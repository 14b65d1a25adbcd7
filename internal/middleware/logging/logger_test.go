package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFileWithFields(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(&Config{Enabled: true, Level: "INFO", LogsDir: dir}, "SIM")
	child := l.WithPrefix("TICKER")

	child.Info("tick failed", "machine_id", "haas_vf2", "dangling")
	child.Debug("hidden")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "tick failed")
	assert.Contains(t, out, "machine_id=haas_vf2")
	assert.Contains(t, out, "dangling=\"?\"")
	assert.Contains(t, out, "SIM [TICKER]")
	assert.NotContains(t, out, "hidden")
}

func TestLogger_ShouldLog(t *testing.T) {
	l := NewLogger(&Config{Enabled: true, Level: "warn"}, "")
	assert.True(t, l.ShouldLog("ERROR"))
	assert.True(t, l.ShouldLog("WARN"))
	assert.False(t, l.ShouldLog("INFO"))

	off := NewLogger(&Config{Enabled: false, Level: "DEBUG"}, "")
	assert.False(t, off.ShouldLog("ERROR"))

	fallback := NewLogger(&Config{Enabled: true, Level: "LOUD"}, "")
	assert.True(t, fallback.ShouldLog("INFO"))
	assert.False(t, fallback.ShouldLog("DEBUG"))
}

func TestLogger_CleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "2000-01-01.log")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0644))
	past := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(old, past, past))

	l := &Logger{config: &Config{Enabled: true, LogsDir: dir, SavingDays: 7}}
	l.entry = NewLogger(&Config{Enabled: false}, "").entry
	l.cleanOldLogs(time.Now())

	_, err := os.Stat(old)
	assert.True(t, os.IsNotExist(err))
}
