package claude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/domain"
)

func TestInstallAgent_Local(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path, err := InstallAgent(AgentDefinition{Name: "tracker", Model: "sonnet", Color: "green"}, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".claude", "agents", "tracker.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	// Frontmatter carries the definition, the body the usage instructions
	assert.Contains(t, text, "name: tracker")
	assert.Contains(t, text, "model: sonnet")
	assert.Contains(t, text, "color: green")
	assert.Contains(t, text, "trusty list")
}

func TestInstallAgent_OmitsEmptyFields(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := InstallAgent(AgentDefinition{Name: "plain"}, false)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "model:")
	assert.NotContains(t, string(content), "color:")
}

func TestInstallAgent_EmptyName(t *testing.T) {
	_, err := InstallAgent(AgentDefinition{}, false)
	assert.ErrorIs(t, err, domain.ErrEmptyAgentName)
}
