package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardIDsFromList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	writeFile(t, path, `[
  {"id": "46986414", "name": "Magicien Sombre"},
  {"id": 89631139, "name": "raw API dump, numeric id"},
  {"name": "no id at all"}
]`)

	ids, err := CardIDs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"46986414", "89631139"}, ids)
}

func TestCardIDsFromSingleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	writeFile(t, path, `{"id": "55144522", "name": "Pot de Cupidité"}`)

	ids, err := CardIDs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"55144522"}, ids)
}

func TestCardIDsSingleObjectWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	writeFile(t, path, `{"name": "anonymous"}`)

	ids, err := CardIDs(path)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCardIDsMissingFile(t *testing.T) {
	_, err := CardIDs(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestCardIDsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, "{not json")

	_, err := CardIDs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
