package tagedit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVocabulary(t *testing.T) {
	if len(Vocabulary) != 28 {
		t.Errorf("len(Vocabulary) = %d, want 28", len(Vocabulary))
	}

	seen := make(map[string]bool)
	for _, tag := range Vocabulary {
		if seen[tag] {
			t.Errorf("duplicate vocabulary entry %q", tag)
		}
		seen[tag] = true
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{"empty fragment", "", nil},
		{"Ja prefix in vocabulary order", "Ja", []string{"JavaScript", "Java"}},
		{"lowercase prefix", "ja", []string{"JavaScript", "Java"}},
		{"uppercase prefix", "JAVAS", []string{"JavaScript"}},
		{"no match", "Xyz", nil},
		{"docker prefix", "Doc", []string{"Docker"}},
		{"exact entry", "Docker", []string{"Docker"}},
		{"symbol prefix", ".", []string{".NET"}},
		{"multi word", "spring b", []string{"Spring Boot"}},
		{"shared prefix", "m", []string{"MySQL", "MongoDB"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.fragment)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggest(%q) mismatch (-want +got):\n%s", tt.fragment, diff)
			}
		})
	}
}

func TestSuggestOnlyReturnsPrefixMatches(t *testing.T) {
	for _, got := range Suggest("Ja") {
		if !strings.HasPrefix(strings.ToLower(got), "ja") {
			t.Errorf("Suggest(\"Ja\") returned %q which does not start with \"ja\"", got)
		}
	}
}

func TestSplitBufferAndFragment(t *testing.T) {
	tests := []struct {
		raw          string
		wantPieces   []string
		wantFragment string
	}{
		{"", []string{""}, ""},
		{"Py", []string{"Py"}, "Py"},
		{"Python, ", []string{"Python", ""}, ""},
		{"Python, Java, Ty", []string{"Python", "Java", "Ty"}, "Ty"},
		{"  Python ,Ja  ", []string{"Python", "Ja"}, "Ja"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantPieces, SplitBuffer(tt.raw)); diff != "" {
				t.Errorf("SplitBuffer(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
			if got := Fragment(tt.raw); got != tt.wantFragment {
				t.Errorf("Fragment(%q) = %q, want %q", tt.raw, got, tt.wantFragment)
			}
		})
	}
}

func TestInVocabulary(t *testing.T) {
	if !InVocabulary("C#") {
		t.Error("InVocabulary(\"C#\") = false, want true")
	}
	if InVocabulary("python") {
		t.Error("InVocabulary(\"python\") = true, want false (case-sensitive)")
	}
	if InVocabulary("Go") {
		t.Error("InVocabulary(\"Go\") = true, want false")
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Python", "Python", true},
		{"python", "Python", true},
		{"node.JS", "Node.js", true},
		{"Pyth", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Canonical(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Canonical(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEditorOnTextChange(t *testing.T) {
	ed := NewEditor()

	got := ed.OnTextChange("Ja")
	if diff := cmp.Diff([]string{"JavaScript", "Java"}, got); diff != "" {
		t.Errorf("OnTextChange(\"Ja\") mismatch (-want +got):\n%s", diff)
	}
	if ed.State() != ListOpen {
		t.Errorf("State() = %v, want %v", ed.State(), ListOpen)
	}
	if ed.Buffer() != "Ja" {
		t.Errorf("Buffer() = %q, want %q", ed.Buffer(), "Ja")
	}
	if ed.Committed() != nil {
		t.Errorf("Committed() = %v, want nil (text changes never commit)", ed.Committed())
	}

	// Trailing comma leaves an empty fragment.
	if got := ed.OnTextChange("Java, "); got != nil {
		t.Errorf("OnTextChange(\"Java, \") = %v, want no suggestions", got)
	}
	if ed.State() != ListClosed {
		t.Errorf("State() = %v, want %v", ed.State(), ListClosed)
	}
}

func TestEditorNoMatchingFragment(t *testing.T) {
	ed := NewEditor()

	if got := ed.OnTextChange("Xyz"); len(got) != 0 {
		t.Errorf("OnTextChange(\"Xyz\") = %v, want empty", got)
	}
	if len(ed.Committed()) != 0 {
		t.Errorf("Committed() = %v, want empty", ed.Committed())
	}
	if ed.State() != ListClosed {
		t.Errorf("State() = %v, want %v", ed.State(), ListClosed)
	}
}

func TestEditorAcceptRoundTrip(t *testing.T) {
	ed := NewEditor()

	ed.OnTextChange("Py")
	ed.Accept("Python")
	ed.OnTextChange(ed.Buffer() + "Ja")
	tags, added := ed.Accept("Java")

	if !added {
		t.Error("Accept(\"Java\") added = false, want true")
	}
	if diff := cmp.Diff([]string{"Python", "Java"}, tags); diff != "" {
		t.Errorf("committed tags mismatch (-want +got):\n%s", diff)
	}
	if ed.Buffer() != "Python, Java, " {
		t.Errorf("Buffer() = %q, want %q", ed.Buffer(), "Python, Java, ")
	}
	if ed.Suggestions() != nil {
		t.Errorf("Suggestions() = %v, want nil after accept", ed.Suggestions())
	}
}

func TestEditorAcceptIsIdempotent(t *testing.T) {
	ed := NewEditor()

	ed.OnTextChange("Py")
	ed.Accept("Python")
	ed.OnTextChange("Python, Py")
	tags, added := ed.Accept("Python")

	if added {
		t.Error("second Accept(\"Python\") added = true, want false")
	}
	if diff := cmp.Diff([]string{"Python"}, tags); diff != "" {
		t.Errorf("committed tags mismatch (-want +got):\n%s", diff)
	}
	// The duplicate still consumes the selection.
	if ed.State() != ListClosed || ed.Suggestions() != nil {
		t.Errorf("duplicate accept left list %v with %v", ed.State(), ed.Suggestions())
	}
	if ed.Buffer() != "Python, " {
		t.Errorf("Buffer() = %q, want %q", ed.Buffer(), "Python, ")
	}
}

// Matching ignores case but duplicate detection does not.
func TestEditorCaseAsymmetry(t *testing.T) {
	ed := NewEditor()

	if got := ed.OnTextChange("python"); len(got) != 1 || got[0] != "Python" {
		t.Fatalf("OnTextChange(\"python\") = %v, want [Python]", got)
	}

	ed.Accept("Python")
	tags, added := ed.Accept("python")
	if !added {
		t.Error("Accept(\"python\") after \"Python\" added = false, want true")
	}
	if diff := cmp.Diff([]string{"Python", "python"}, tags); diff != "" {
		t.Errorf("committed tags mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorBufferIsDerivedFromCommittedTags(t *testing.T) {
	ed := NewEditor()

	// Free text before the fragment is not a committed tag and does not survive
	// an acceptance.
	ed.OnTextChange("Foo, Ja")
	ed.Accept("Java")

	if ed.Buffer() != "Java, " {
		t.Errorf("Buffer() = %q, want %q", ed.Buffer(), "Java, ")
	}

	pieces := SplitBuffer(ed.Buffer())
	if diff := cmp.Diff(ed.Committed(), pieces[:len(pieces)-1]); diff != "" {
		t.Errorf("buffer pieces do not match committed tags (-committed +pieces):\n%s", diff)
	}
	if pieces[len(pieces)-1] != "" {
		t.Errorf("fragment = %q, want empty", pieces[len(pieces)-1])
	}
}

func TestEditorPreview(t *testing.T) {
	ed := NewEditor()
	ed.Accept("Python")
	ed.OnTextChange("Python, Ja")

	if got := ed.Preview("Java"); got != "Python, Java, " {
		t.Errorf("Preview(\"Java\") = %q, want %q", got, "Python, Java, ")
	}
	if got := ed.Preview("Python"); got != "Python, " {
		t.Errorf("Preview(\"Python\") = %q, want %q", got, "Python, ")
	}
	// Preview must not mutate.
	if ed.Buffer() != "Python, Ja" {
		t.Errorf("Buffer() = %q after Preview, want unchanged", ed.Buffer())
	}
	if diff := cmp.Diff([]string{"Python"}, ed.Committed()); diff != "" {
		t.Errorf("Committed() changed after Preview (-want +got):\n%s", diff)
	}
}

func TestEditorBlurExpires(t *testing.T) {
	ed := NewEditor()
	ed.OnTextChange("Ja")

	token, pending := ed.Blur()
	if !pending {
		t.Fatal("Blur() pending = false, want true with open list")
	}
	if ed.State() != ListPendingClose {
		t.Errorf("State() = %v, want %v", ed.State(), ListPendingClose)
	}
	if len(ed.Suggestions()) == 0 {
		t.Error("suggestions cleared before the blur delay elapsed")
	}

	if !ed.ExpireBlur(token) {
		t.Error("ExpireBlur() = false, want true")
	}
	if ed.State() != ListClosed || ed.Suggestions() != nil {
		t.Errorf("after expiry: state %v, suggestions %v", ed.State(), ed.Suggestions())
	}
}

func TestEditorSelectionBeatsBlurTimer(t *testing.T) {
	ed := NewEditor()
	ed.OnTextChange("Ja")

	token, _ := ed.Blur()
	tags, added := ed.Accept("Java")
	if !added || len(tags) != 1 {
		t.Fatalf("Accept during pending close = %v, %v", tags, added)
	}

	if ed.ExpireBlur(token) {
		t.Error("ExpireBlur() with stale token = true, want false")
	}
	if ed.Buffer() != "Java, " {
		t.Errorf("Buffer() = %q, want %q", ed.Buffer(), "Java, ")
	}
}

func TestEditorFocusCancelsPendingClose(t *testing.T) {
	ed := NewEditor()
	ed.OnTextChange("Ty")

	token, _ := ed.Blur()
	ed.Focus()

	if ed.State() != ListOpen {
		t.Errorf("State() = %v after Focus, want %v", ed.State(), ListOpen)
	}
	if ed.ExpireBlur(token) {
		t.Error("ExpireBlur() after Focus = true, want false")
	}
	if diff := cmp.Diff([]string{"TypeScript"}, ed.Suggestions()); diff != "" {
		t.Errorf("Suggestions() mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorBlurWithClosedList(t *testing.T) {
	ed := NewEditor()

	if _, pending := ed.Blur(); pending {
		t.Error("Blur() on closed list pending = true, want false")
	}
	ed.Focus()
	if ed.State() != ListClosed {
		t.Errorf("State() = %v, want %v", ed.State(), ListClosed)
	}
}

func TestEditorReset(t *testing.T) {
	ed := NewEditor()
	ed.Accept("Go")
	ed.OnTextChange("Go, Ja")

	ed.Reset()

	if ed.Buffer() != "" || ed.Committed() != nil || ed.Suggestions() != nil || ed.State() != ListClosed {
		t.Errorf("Reset left buffer=%q committed=%v suggestions=%v state=%v",
			ed.Buffer(), ed.Committed(), ed.Suggestions(), ed.State())
	}
}

func TestListStateString(t *testing.T) {
	tests := []struct {
		state ListState
		want  string
	}{
		{ListClosed, "closed"},
		{ListOpen, "open"},
		{ListPendingClose, "pending-close"},
		{ListState(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ListState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
