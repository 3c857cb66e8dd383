package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	s := New(KindCustomer, "ind-123", "jdoe")
	require.NoError(t, Save(dir, s))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, KindCustomer, loaded.Kind)
	assert.Equal(t, "ind-123", loaded.ID)
	assert.Equal(t, "jdoe", loaded.Username)
	assert.Equal(t, s.LoggedInAt, loaded.LoggedInAt)
}

func TestSave_CreatesDirAndRestrictsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app")

	require.NoError(t, Save(dir, New(KindStaff, "emp-1", "mteller")))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoad_NoSession(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLoad_EmptyID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"kind":"customer"}`), 0600))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, New(KindCustomer, "ind-123", "jdoe")))

	require.NoError(t, Clear(dir))
	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNoSession)

	// clearing twice is fine
	require.NoError(t, Clear(dir))
}
