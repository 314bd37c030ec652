package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/theme"
)

func TestFormatExtraction(t *testing.T) {
	colours := []string{"#101010", "#fafafa", "#cd3131"}

	t.Run("hex list", func(t *testing.T) {
		out, err := formatExtraction(colours, "hex", false)
		if err != nil {
			t.Fatal(err)
		}
		if out != "#101010\n#fafafa\n#cd3131\n" {
			t.Errorf("got %q", out)
		}
	})

	t.Run("json list", func(t *testing.T) {
		out, err := formatExtraction(colours, "json", false)
		if err != nil {
			t.Fatal(err)
		}
		var doc struct {
			Colors []string `json:"colors"`
		}
		if err := json.Unmarshal([]byte(out), &doc); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if len(doc.Colors) != 3 || doc.Colors[0] != "#101010" {
			t.Errorf("colours = %v", doc.Colors)
		}
	})

	t.Run("mapped hex", func(t *testing.T) {
		out, err := formatExtraction(colours, "hex", true)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "background      #101010") {
			t.Errorf("mapped output missing darkest-as-background:\n%s", out)
		}
		// All 19 roles are listed after validation.
		if got := strings.Count(out, "\n"); got != 19 {
			t.Errorf("got %d lines, want 19", got)
		}
	})

	t.Run("mapped json is a loadable theme", func(t *testing.T) {
		out, err := formatExtraction(colours, "json", true)
		if err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(t.TempDir(), "extracted.json")
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			t.Fatal(err)
		}
		th := theme.New()
		if err := th.Load(path); err != nil {
			t.Fatalf("mapped JSON does not load as a theme: %v", err)
		}
		if th.Name != "Extracted Theme" {
			t.Errorf("name = %q", th.Name)
		}
		if !th.Colours().Complete() {
			t.Error("loaded theme incomplete")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := formatExtraction(colours, "rgb", false); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestResolveTheme(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		th, err := resolveTheme("", "")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != theme.DefaultName {
			t.Errorf("name = %q", th.Name)
		}
	})

	t.Run("preset", func(t *testing.T) {
		th, err := resolveTheme("", "Nord")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != "Nord" {
			t.Errorf("name = %q", th.Name)
		}
		if got := th.Colours()[colour.RoleBackground]; got != "#2e3440" {
			t.Errorf("background = %s", got)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		if _, err := resolveTheme("", "Not A Preset"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("theme file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saved.json")
		content := `{"name": "Saved", "colors": {"background": "#050505"}}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		th, err := resolveTheme(path, "")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != "Saved" {
			t.Errorf("name = %q", th.Name)
		}
	})

	t.Run("mutually exclusive flags", func(t *testing.T) {
		if _, err := resolveTheme("a.json", "Nord"); err == nil {
			t.Error("expected error for both flags")
		}
	})
}

func TestLoadThemeArg(t *testing.T) {
	t.Run("preset name", func(t *testing.T) {
		th, err := loadThemeArg("Dracula")
		if err != nil {
			t.Fatal(err)
		}
		if got := th.Colours()[colour.RoleBackground]; got != "#282a36" {
			t.Errorf("background = %s", got)
		}
	})

	t.Run("neither preset nor json", func(t *testing.T) {
		if _, err := loadThemeArg("whatever"); err == nil {
			t.Error("expected error")
		}
	})
}
