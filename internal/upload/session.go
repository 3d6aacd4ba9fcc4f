// Package upload holds the state of the plan upload page: the selected
// files, their tags and the simulated upload lifecycle.
package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNoFiles is returned when an upload is started with nothing selected.
	ErrNoFiles = errors.New("upload: no files selected")

	// ErrUploadPending is returned while an upload is in flight.
	ErrUploadPending = errors.New("upload: upload already in progress")
)

// State is the upload lifecycle of a session.
type State int

const (
	StateIdle State = iota
	StateUploading
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateUploading:
		return "uploading"
	case StateComplete:
		return "complete"
	default:
		return "idle"
	}
}

// File is one selected file.
type File struct {
	ID   string
	Name string
	Path string
	Size int64
	Kind Kind
}

// Session is the state owned by one mounted upload view.
type Session struct {
	files []File
	tags  []string
	state State
}

// NewSession returns an empty idle session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Files returns a copy of the selected files in selection order.
func (s *Session) Files() []File {
	return append([]File(nil), s.files...)
}

// Tags returns a copy of the tags in entry order.
func (s *Session) Tags() []string {
	return append([]string(nil), s.tags...)
}

// AddFiles appends the given paths to the selection. Files that cannot be
// stat'ed are still added with a zero size.
func (s *Session) AddFiles(paths ...string) ([]File, error) {
	if s.state == StateUploading {
		return nil, ErrUploadPending
	}
	added := make([]File, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f := File{
			ID:   uuid.NewString(),
			Name: filepath.Base(p),
			Path: p,
			Kind: KindOf(p),
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			f.Size = info.Size()
		}
		added = append(added, f)
	}
	s.files = append(s.files, added...)
	return added, nil
}

// RemoveFile drops the file with the given id. Reports whether it was found.
func (s *Session) RemoveFile(id string) bool {
	if s.state == StateUploading {
		return false
	}
	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i:i], s.files[i+1:]...)
			return true
		}
	}
	return false
}

// AddTag trims tag and appends it unless it is empty or already present.
func (s *Session) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.state == StateUploading {
		return false
	}
	for _, t := range s.tags {
		if t == tag {
			return false
		}
	}
	s.tags = append(s.tags, tag)
	return true
}

// PopTag removes the most recently added tag, as backspace on an empty
// tag input does.
func (s *Session) PopTag() (string, bool) {
	if len(s.tags) == 0 || s.state == StateUploading {
		return "", false
	}
	last := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1]
	return last, true
}

// RemoveTag removes the tag at index i. Out-of-range indices are ignored,
// as is any call while an upload is pending.
func (s *Session) RemoveTag(i int) {
	if i < 0 || i >= len(s.tags) || s.state == StateUploading {
		return
	}
	s.tags = append(s.tags[:i:i], s.tags[i+1:]...)
}

// BeginUpload moves the session to uploading and returns the files to send.
func (s *Session) BeginUpload() ([]File, error) {
	if s.state == StateUploading {
		return nil, ErrUploadPending
	}
	if len(s.files) == 0 {
		return nil, ErrNoFiles
	}
	s.state = StateUploading
	return s.Files(), nil
}

// FinishUpload records the outcome of an upload started with BeginUpload.
// On failure the selection is kept so the user can retry.
func (s *Session) FinishUpload(err error) {
	if s.state != StateUploading {
		return
	}
	if err != nil {
		s.state = StateIdle
		return
	}
	s.state = StateComplete
}

// Clear drops files and tags and returns to idle.
func (s *Session) Clear() {
	s.files = nil
	s.tags = nil
	s.state = StateIdle
}
