package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	drafts := c.All()
	require.NotEmpty(t, drafts)
	assert.Equal(t, 1, drafts[0].ID)
	assert.NotEmpty(t, drafts[0].Title)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	content := `
- id: 9
  title: "Test Draft"
  category: "Testing"
  description: "A draft"
  documentUrl: "https://example.com/d.pdf"
  publishedDate: "2025-06-01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	draft, err := c.Get(9)
	require.NoError(t, err)
	assert.Equal(t, "Test Draft", draft.Title)
}

func TestLoad_DuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	content := "- id: 1\n  title: a\n- id: 1\n  title: b\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGet_NotFound(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}
