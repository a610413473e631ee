package text

import (
	"strings"
	"testing"
)

func TestSectionLabel(t *testing.T) {
	tests := []struct {
		line  string
		label string
		ok    bool
	}{
		{"[Verse 1]", "Verse 1", true},
		{"[Chorus]", "Chorus", true},
		{"[Pre-Chorus  2]", "Pre-Chorus 2", true},
		{"Verse 1", "", false},
		{"[Verse 1] extra", "", false},
		{"[[Nested]]", "", false},
		{"[]", "", false},
	}

	for _, tt := range tests {
		label, ok := SectionLabel(tt.line)
		if ok != tt.ok || label != tt.label {
			t.Errorf("SectionLabel(%q) = (%q, %v), want (%q, %v)", tt.line, label, ok, tt.label, tt.ok)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("one\r\ntwo  \n\nthree\n")
	want := []string{"one", "two", "", "three"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}

	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("SplitLines(\"\") = %q, want empty", got)
	}
}

func TestNonEmptyLines(t *testing.T) {
	got := NonEmptyLines("  a \n\n b\n   \n")
	if strings.Join(got, "|") != "a|b" {
		t.Errorf("NonEmptyLines() = %q, want [a b]", got)
	}
}

func TestPostprocess(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  奇异恩典  ", "奇异恩典"},
		{"\"How sweet the sound\"", "How sweet the sound"},
		{"a   b", "a b"},
	}
	for _, tt := range tests {
		if got := Postprocess(tt.in); got != tt.want {
			t.Errorf("Postprocess(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"amazing grace", "Amazing Grace"},
		{"  2 PETER 1:5-11 ", "2 Peter 1:5-11"},
		{"it's your love", "It's Your Love"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanSongTitle(t *testing.T) {
	if got := CleanSongTitle("goodness of god (Live)"); got != "Goodness Of God" {
		t.Errorf("CleanSongTitle() = %q, want 'Goodness Of God'", got)
	}
}

func TestGetLanguageName(t *testing.T) {
	if got := GetLanguageName("zh"); got != "Chinese (Simplified)" {
		t.Errorf("GetLanguageName(zh) = %q", got)
	}
	if got := GetLanguageName("Klingon"); got != "Klingon" {
		t.Errorf("GetLanguageName(Klingon) = %q, want passthrough", got)
	}
}

func TestGetLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"Chinese (Simplified)", "zh", true},
		{"chinese", "zh", true},
		{"Korean", "ko", true},
		{"en", "en", true},
		{"Elvish", "", false},
	}
	for _, tt := range tests {
		code, ok := GetLanguageCode(tt.name)
		if code != tt.code || ok != tt.ok {
			t.Errorf("GetLanguageCode(%q) = (%q, %v), want (%q, %v)", tt.name, code, ok, tt.code, tt.ok)
		}
	}
}

func TestIsValidTargetLanguage(t *testing.T) {
	if !IsValidTargetLanguage("korean") {
		t.Error("korean should be a valid target")
	}
	if IsValidTargetLanguage("English") {
		t.Error("English is not offered as a target")
	}
}

func TestEscapeForPython(t *testing.T) {
	got := EscapeForPython("It's\\new\nline")
	want := `It\'s\\new\nline`
	if got != want {
		t.Errorf("EscapeForPython() = %q, want %q", got, want)
	}
}
