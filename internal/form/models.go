package form

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Field names a form field. Values match the keys used in error reports.
type Field string

const (
	FieldUsername  Field = "username"
	FieldEmail     Field = "email"
	FieldGender    Field = "gender"
	FieldLanguages Field = "languages"
	FieldImage     Field = "image"
)

// Fields lists every form field in display order
var Fields = []Field{FieldUsername, FieldEmail, FieldGender, FieldLanguages, FieldImage}

// Label returns the human-readable label shown next to the field
func (f Field) Label() string {
	switch f {
	case FieldUsername:
		return "User Name"
	case FieldEmail:
		return "Email"
	case FieldGender:
		return "Gender"
	case FieldLanguages:
		return "Languages"
	case FieldImage:
		return "Upload your image"
	default:
		return string(f)
	}
}

// Gender is the radio-selected gender. The zero value means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// GenderOptions lists the selectable genders in display order
var GenderOptions = []Gender{GenderMale, GenderFemale, GenderOther}

// Label returns the display label for the gender option
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return "Not selected"
	}
}

// ParseGender converts a raw value into a Gender.
// Matching is case-insensitive; the empty string parses as GenderUnset.
func ParseGender(raw string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return GenderUnset, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	case "other":
		return GenderOther, nil
	default:
		return GenderUnset, NewFieldError(FieldGender, fmt.Sprintf("unknown gender %q (expected male, female or other)", raw))
	}
}

// FileHandle is an opaque reference to a user-selected file.
// Only its presence matters to validation; the file contents are never read.
type FileHandle struct {
	Path string // Absolute path as selected
	Name string // Base name for display
	Size int64  // Size in bytes at selection time
}

// String returns the display form of the handle
func (h *FileHandle) String() string {
	if h == nil {
		return ""
	}
	return h.Name
}

// OpenFileHandle creates a handle for the file at path.
// The file is stat'ed, not opened: it must exist and must not be a directory.
func OpenFileHandle(path string) (*FileHandle, error) {
	if strings.TrimSpace(path) == "" {
		return nil, NewFileError(path, "no file selected", nil)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewFileError(path, "cannot resolve path", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewFileError(abs, "file does not exist", err)
		}
		return nil, NewFileError(abs, "cannot access file", err)
	}
	if info.IsDir() {
		return nil, NewFileError(abs, "path is a directory", nil)
	}

	return &FileHandle{
		Path: abs,
		Name: info.Name(),
		Size: info.Size(),
	}, nil
}

// State is the full set of form field values
type State struct {
	Username string
	Email    string
	Gender   Gender
	Tags     []string
	Image    *FileHandle
}

// clone returns a deep copy so snapshots don't alias controller state
func (s State) clone() State {
	out := s
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	if s.Image != nil {
		img := *s.Image
		out.Image = &img
	}
	return out
}

// Errors maps a field to its validation message. A field without an entry,
// or with an empty message, passed validation.
type Errors map[Field]string

// Get returns the message for field, or "" if it passed
func (e Errors) Get(field Field) string {
	return e[field]
}

// Any reports whether any field has a non-empty message
func (e Errors) Any() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Fields returns the failing fields in display order
func (e Errors) Fields() []Field {
	var out []Field
	for _, f := range Fields {
		if e[f] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Submission is the snapshot of a successfully validated form
type Submission struct {
	State
}

// Summary returns label/value pairs for the acknowledgment screen in display order
func (s Submission) Summary() [][2]string {
	image := ""
	if s.Image != nil {
		image = s.Image.Name
	}
	return [][2]string{
		{FieldUsername.Label(), s.Username},
		{FieldEmail.Label(), s.Email},
		{FieldGender.Label(), s.Gender.Label()},
		{FieldLanguages.Label(), strings.Join(s.Tags, ", ")},
		{"Image", image},
	}
}
