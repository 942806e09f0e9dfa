package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 7, p.Warning.CriticalDays)
	assert.Equal(t, 4, p.Warning.HighDays)
	assert.Contains(t, p.Warning.CriticalKeywords, "pelecehan")
	assert.Equal(t, "Laporan Telah Selesai", p.Notification.Titles["Selesai"])
	assert.Equal(t, 10*time.Second, p.AI.SummaryMinGap)
	assert.InDelta(t, 0.3, p.AI.MatchFallbackConfidence, 1e-9)
}

func TestLoadPolicyOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("warning:\n  critical_days: 10\n"), 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Warning.CriticalDays)
	assert.Equal(t, 4, p.Warning.HighDays)
}

func TestLoadPolicyMissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestRosterYAMLDefault(t *testing.T) {
	raw, err := RosterYAML("")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Hendra Wijaya")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList(" a, b,,c "))
	assert.Nil(t, SplitList(""))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("LK_TEST_INT", "12")
	t.Setenv("LK_TEST_BAD", "x")
	t.Setenv("LK_TEST_BOOL", "true")
	assert.Equal(t, 12, GetEnvInt("LK_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("LK_TEST_BAD", 1))
	assert.True(t, GetEnvBool("LK_TEST_BOOL", false))
	assert.Equal(t, "def", GetEnv("LK_TEST_MISSING", "def"))
}
