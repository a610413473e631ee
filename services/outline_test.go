package services

import (
	"strings"
	"testing"

	"service-slides/internal/content"
	"service-slides/internal/paginate"
)

func TestOutlineRenderer_Scripture(t *testing.T) {
	var b strings.Builder
	r := NewOutlineRenderer(&b)

	chunks := paginate.PaginateTexts([]string{"v1\n", "v2\n", "v3\n"}, 2, 4)
	if err := r.RenderScripture("John 3:16-18 (WEB)", chunks); err != nil {
		t.Fatalf("RenderScripture() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{"== John 3:16-18 (WEB) ==", "--- 1/2 ---\nv1\nv2\n", "--- 2/2 ---\nv3\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if r.Slides() != 2 {
		t.Errorf("Slides() = %d, want 2", r.Slides())
	}
}

func TestOutlineRenderer_Song(t *testing.T) {
	var b strings.Builder
	r := NewOutlineRenderer(&b)

	slides := []SongSlide{
		{Section: "Verse 1", Lines: []content.TranslationPair{
			{Original: "Amazing grace", Translated: "奇异恩典", HasTranslation: true},
			{Original: ""},
		}},
		{Section: "Chorus", Lines: []content.TranslationPair{{Original: "My chains are gone"}}},
	}
	if err := r.RenderSong("Amazing Grace", "CCLI license number: 22025", slides); err != nil {
		t.Fatalf("RenderSong() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"== Amazing Grace ==\nCCLI license number: 22025\n",
		"--- Verse 1 1/2 ---\nAmazing grace\n    奇异恩典\n",
		"--- Chorus 2/2 ---\nMy chains are gone\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if r.Slides() != 3 {
		t.Errorf("Slides() = %d, want 3 (title + 2)", r.Slides())
	}
}
