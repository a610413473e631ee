package paginate

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"service-slides/internal/content"
)

func verses(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%d\n", i+1)
	}
	return out
}

func TestPaginate_Empty(t *testing.T) {
	for _, max := range []int{1, 2, 5} {
		chunks := Paginate(nil, max, 4)
		if len(chunks) != 0 {
			t.Errorf("Paginate(nil, %d, 4) returned %d chunks, want 0", max, len(chunks))
		}
	}
}

func TestPaginate_TwoPerSlide(t *testing.T) {
	chunks := PaginateTexts(verses(5), 2, 4)

	want := [][]string{
		{"v1\n", "v2\n"},
		{"v3\n", "v4\n"},
		{"v5\n"},
	}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i, c := range chunks {
		got := c.Texts()
		if strings.Join(got, "|") != strings.Join(want[i], "|") {
			t.Errorf("chunk %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestPaginate_OnePerSlide(t *testing.T) {
	chunks := PaginateTexts(verses(4), 1, 10)
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Units) != 1 {
			t.Errorf("chunk %d has %d units, want 1", i, len(c.Units))
		}
	}
}

func TestPaginate_NewlineBudget(t *testing.T) {
	texts := []string{"a\nb\n", "c\nd\n", "e\n", "f\n"}
	chunks := PaginateTexts(texts, 5, 4)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[0].Units) != 2 {
		t.Errorf("first chunk has %d units, want 2", len(chunks[0].Units))
	}
	if chunks[0].LineCount != 4 {
		t.Errorf("first chunk LineCount = %d, want 4", chunks[0].LineCount)
	}
	if len(chunks[1].Units) != 2 {
		t.Errorf("second chunk has %d units, want 2", len(chunks[1].Units))
	}
}

func TestPaginate_SingleUnitOverflow(t *testing.T) {
	long := "1\n2\n3\n4\n5\n6\n"
	chunks := PaginateTexts([]string{"short\n", long, "after\n"}, 3, 4)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].LineCount <= 4 {
		t.Errorf("expected overflowing chunk, LineCount = %d", chunks[0].LineCount)
	}
	if chunks[1].Text() != "after\n" {
		t.Errorf("second chunk = %q, want 'after\\n'", chunks[1].Text())
	}
}

func TestPaginate_OverflowAlone(t *testing.T) {
	long := "1\n2\n3\n4\n5\n"
	chunks := PaginateTexts([]string{long, "next\n"}, 2, 4)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[0].Units) != 1 || chunks[0].Units[0].Text != long {
		t.Errorf("first chunk should hold only the long verse, got %q", chunks[0].Texts())
	}
}

func TestPaginate_ZeroNewlineBudget(t *testing.T) {
	chunks := PaginateTexts([]string{"a", "b", "c"}, 3, 0)
	if len(chunks) != 3 {
		t.Errorf("got %d chunks, want 3", len(chunks))
	}
}

func TestPaginate_ClampsUnitCount(t *testing.T) {
	chunks := PaginateTexts(verses(3), 0, 10)
	if len(chunks) != 3 {
		t.Errorf("got %d chunks, want 3", len(chunks))
	}
}

func TestPaginateSection_LabelsChunks(t *testing.T) {
	section := content.Section{Name: "Verse 1", Units: content.NewUnits([]string{"a", "b", "c"})}
	chunks := PaginateSection(section, 2, 4)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	for i, c := range chunks {
		if c.Section != "Verse 1" {
			t.Errorf("chunk %d Section = %q, want 'Verse 1'", i, c.Section)
		}
	}
}

func TestPaginate_RoundTripAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(30)
		texts := make([]string, n)
		for i := range texts {
			texts[i] = fmt.Sprintf("u%d", i) + strings.Repeat("\n", rng.Intn(4))
		}
		unitMax := 1 + rng.Intn(5)
		lineMax := rng.Intn(7)

		chunks := PaginateTexts(texts, unitMax, lineMax)

		var rebuilt []string
		for _, c := range chunks {
			if len(c.Units) == 0 {
				t.Fatalf("trial %d: empty chunk emitted", trial)
			}
			single := len(c.Units) == 1 && c.LineCount > lineMax
			if len(c.Units) > unitMax && !single {
				t.Fatalf("trial %d: chunk has %d units, max %d", trial, len(c.Units), unitMax)
			}
			rebuilt = append(rebuilt, c.Texts()...)
		}

		if len(rebuilt) != len(texts) {
			t.Fatalf("trial %d: rebuilt %d units, want %d", trial, len(rebuilt), len(texts))
		}
		for i := range texts {
			if rebuilt[i] != texts[i] {
				t.Fatalf("trial %d: unit %d = %q, want %q", trial, i, rebuilt[i], texts[i])
			}
		}
	}
}
