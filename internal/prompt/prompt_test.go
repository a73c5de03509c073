package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/langform/internal/form"
)

type stubDriver struct {
	inputs   []string
	selects  []int
	confirms []bool

	inputPos   int
	selectPos  int
	confirmPos int

	asked []InputConfig
	infos []string
}

func (s *stubDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.asked = append(s.asked, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted for " + cfg.Message)
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.selectPos >= len(s.selects) {
		return -1, errors.New("no select scripted for " + cfg.Message)
	}
	val := s.selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted for " + cfg.Message)
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.infos = append(s.infos, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infos {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avatar.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunSubmitsOnFirstPass(t *testing.T) {
	image := writeImage(t)
	d := &stubDriver{
		confirms: []bool{true},
		selects:  []int{1},
		inputs: []string{
			"alice",
			"alice@example.com",
			"python",
			"Ja",
			"Java",
			"Java",
			"",
			image,
		},
	}
	c := form.NewController()

	sub, err := Run(context.Background(), d, c)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := form.State{
		Username: "alice",
		Email:    "alice@example.com",
		Gender:   form.GenderFemale,
		Tags:     []string{"Python", "Java"},
	}
	got := sub.State
	got.Image = nil
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}
	if sub.Image == nil || sub.Image.Name != "avatar.png" {
		t.Errorf("submission image = %v, want avatar.png", sub.Image)
	}

	if !d.sawInfo(`"Ja" matches JavaScript, Java`) {
		t.Errorf("ambiguous answer not reported, infos = %q", d.infos)
	}
	if !d.sawInfo("Java already added") {
		t.Errorf("duplicate answer not reported, infos = %q", d.infos)
	}
	if !d.sawInfo("Form successfully submitted!") {
		t.Errorf("acknowledgment missing, infos = %q", d.infos)
	}

	if c.ShowForm() {
		t.Error("controller should be back on the welcome gate")
	}
	if diff := cmp.Diff(form.State{}, c.State()); diff != "" {
		t.Errorf("controller not reset (-want +got):\n%s", diff)
	}
}

func TestRunReasksOnlyFailingFields(t *testing.T) {
	image := writeImage(t)
	d := &stubDriver{
		confirms: []bool{true},
		selects:  []int{0}, // gender passes on the first attempt and is not asked again
		inputs: []string{
			// first pass
			"",
			"bob@example",
			"",
			"",
			// second pass: username, email, languages, image
			"bob",
			"bob@example.com",
			"Docker",
			"",
			image,
		},
	}
	c := form.NewController()

	sub, err := Run(context.Background(), d, c)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sub.Gender != form.GenderMale {
		t.Errorf("Gender = %q, want male", sub.Gender)
	}
	if diff := cmp.Diff([]string{"Docker"}, sub.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
	if !d.sawInfo("Form validation failed with 4 error(s)") {
		t.Errorf("validation summary missing, infos = %q", d.infos)
	}
	if d.inputPos != len(d.inputs) {
		t.Errorf("consumed %d inputs, want %d", d.inputPos, len(d.inputs))
	}
}

func TestRunKeepsPreviousAnswersAsDefaults(t *testing.T) {
	image := writeImage(t)
	d := &stubDriver{
		confirms: []bool{true},
		selects:  []int{2},
		inputs: []string{
			"carol", "not-an-email", "Git", "", image,
			"carol@example.com",
		},
	}

	if _, err := Run(context.Background(), d, form.NewController()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	last := d.asked[len(d.asked)-1]
	if last.Default != "not-an-email" {
		t.Errorf("re-asked email default = %q, want previous answer", last.Default)
	}
}

func TestRunDeclined(t *testing.T) {
	d := &stubDriver{confirms: []bool{false}}
	c := form.NewController()

	_, err := Run(context.Background(), d, c)
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("Run() error = %v, want ErrDeclined", err)
	}
	if c.ShowForm() {
		t.Error("declining must not open the form")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &stubDriver{}, form.NewController())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}

func TestAskImageRetriesMissingFile(t *testing.T) {
	image := writeImage(t)
	missing := filepath.Join(t.TempDir(), "missing.png")
	d := &stubDriver{inputs: []string{missing, filepath.Dir(image), image}}
	c := form.NewController()

	if err := askImage(context.Background(), d, c); err != nil {
		t.Fatalf("askImage() error = %v", err)
	}
	if !d.sawInfo("file does not exist") || !d.sawInfo("path is a directory") {
		t.Errorf("file errors not reported, infos = %q", d.infos)
	}
	if c.State().Image == nil {
		t.Error("image not selected")
	}
}

func TestAskLanguagesCompletesFromVocabulary(t *testing.T) {
	d := &stubDriver{inputs: []string{"Xyz", ""}}
	c := form.NewController()

	if err := askLanguages(context.Background(), d, c); err != nil {
		t.Fatalf("askLanguages() error = %v", err)
	}
	if !d.sawInfo(`Unknown language "Xyz"`) {
		t.Errorf("unknown language not reported, infos = %q", d.infos)
	}
	if len(c.State().Tags) != 0 || c.TagBuffer() != "" {
		t.Errorf("rejected answer leaked into state: tags=%v buffer=%q", c.State().Tags, c.TagBuffer())
	}

	suggest := d.asked[0].Suggest
	if suggest == nil {
		t.Fatal("languages prompt has no completion")
	}
	if diff := cmp.Diff([]string{"JavaScript", "Java"}, suggest("Ja")); diff != "" {
		t.Errorf("Suggest(\"Ja\") mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTag(t *testing.T) {
	tests := []struct {
		answer string
		want   string
		ok     bool
	}{
		{"Java", "Java", true},
		{"java", "Java", true},
		{"typ", "TypeScript", true},
		{"Ja", "", false},
		{"Xyz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, _, ok := resolveTag(form.NewController(), tt.answer)
			if got != tt.want || ok != tt.ok {
				t.Errorf("resolveTag(%q) = %q, %v; want %q, %v", tt.answer, got, ok, tt.want, tt.ok)
			}
		})
	}
}
