package upload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestAddFiles(t *testing.T) {
	s := NewSession()
	pdf := writeFile(t, "algebra.pdf", "12345")

	added, err := s.AddFiles(pdf, "  ", "/missing/slides.pptx")
	require.NoError(t, err)
	require.Len(t, added, 2)

	assert.Equal(t, "algebra.pdf", added[0].Name)
	assert.Equal(t, int64(5), added[0].Size)
	assert.Equal(t, KindPDF, added[0].Kind)
	_, err = uuid.Parse(added[0].ID)
	assert.NoError(t, err)

	assert.Equal(t, "slides.pptx", added[1].Name)
	assert.Zero(t, added[1].Size)
	assert.Equal(t, KindSlide, added[1].Kind)

	assert.NotEqual(t, added[0].ID, added[1].ID)
	assert.Equal(t, added, s.Files())
}

func TestRemoveFile(t *testing.T) {
	s := NewSession()
	added, err := s.AddFiles("a.pdf", "b.pdf", "c.pdf")
	require.NoError(t, err)

	assert.True(t, s.RemoveFile(added[1].ID))
	assert.False(t, s.RemoveFile(added[1].ID))

	files := s.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Name)
	assert.Equal(t, "c.pdf", files[1].Name)
}

func TestTags(t *testing.T) {
	s := NewSession()
	assert.True(t, s.AddTag("  數學 "))
	assert.False(t, s.AddTag("數學"), "duplicate")
	assert.False(t, s.AddTag("   "), "blank")
	assert.True(t, s.AddTag("代數"))
	assert.True(t, s.AddTag("國中"))
	assert.Equal(t, []string{"數學", "代數", "國中"}, s.Tags())

	s.RemoveTag(1)
	s.RemoveTag(7)
	assert.Equal(t, []string{"數學", "國中"}, s.Tags())

	last, ok := s.PopTag()
	assert.True(t, ok)
	assert.Equal(t, "國中", last)
	_, _ = s.PopTag()
	_, ok = s.PopTag()
	assert.False(t, ok)
	assert.Empty(t, s.Tags())
}

func TestBeginUpload_RequiresFiles(t *testing.T) {
	s := NewSession()
	_, err := s.BeginUpload()
	assert.ErrorIs(t, err, ErrNoFiles)
	assert.Equal(t, StateIdle, s.State())
}

func TestUploadLifecycle(t *testing.T) {
	s := NewSession()
	_, err := s.AddFiles("a.pdf")
	require.NoError(t, err)
	s.AddTag("x")

	files, err := s.BeginUpload()
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, StateUploading, s.State())

	_, err = s.BeginUpload()
	assert.ErrorIs(t, err, ErrUploadPending)
	_, err = s.AddFiles("b.pdf")
	assert.ErrorIs(t, err, ErrUploadPending)
	assert.False(t, s.RemoveFile(files[0].ID))

	s.FinishUpload(nil)
	assert.Equal(t, StateComplete, s.State())

	s.Clear()
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Files())
	assert.Empty(t, s.Tags())
}

func TestTags_LockedWhileUploading(t *testing.T) {
	s := NewSession()
	_, err := s.AddFiles("a.pdf")
	require.NoError(t, err)
	s.AddTag("代數")
	s.AddTag("幾何")
	_, err = s.BeginUpload()
	require.NoError(t, err)

	assert.False(t, s.AddTag("late"))
	_, ok := s.PopTag()
	assert.False(t, ok)
	s.RemoveTag(0)
	assert.Equal(t, []string{"代數", "幾何"}, s.Tags())

	s.FinishUpload(nil)
	last, ok := s.PopTag()
	require.True(t, ok)
	assert.Equal(t, "幾何", last)
}

func TestFinishUpload_FailureKeepsSelection(t *testing.T) {
	s := NewSession()
	_, err := s.AddFiles("a.pdf")
	require.NoError(t, err)
	_, err = s.BeginUpload()
	require.NoError(t, err)

	s.FinishUpload(errors.New("disk full"))
	assert.Equal(t, StateIdle, s.State())
	assert.Len(t, s.Files(), 1)
}

func TestFinishUpload_IgnoredWhenIdle(t *testing.T) {
	s := NewSession()
	s.FinishUpload(nil)
	assert.Equal(t, StateIdle, s.State())
}
