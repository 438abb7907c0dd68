package segment

import (
	"strings"
	"testing"
)

const threeSessions = `# 2024-05-01 09:00:00
morning discussion
about caching
# 2024-05-01 13:30:00
afternoon debugging
# 2024-05-02 10:15:00
next day wrap-up
`

func TestSegmentCountsHeaders(t *testing.T) {
	s := NewSegmenter()

	blocks := s.Segment(threeSessions)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	for i, b := range blocks {
		if b.Ordinal != i+1 {
			t.Errorf("block %d ordinal = %d", i, b.Ordinal)
		}
		if !strings.HasPrefix(strings.TrimLeft(b.Content, " \t"), "# 2024-05-0") {
			t.Errorf("block %d does not start at header: %q", i, b.Content[:20])
		}
	}
}

func TestSegmentConcatenationReproducesText(t *testing.T) {
	s := NewSegmenter()
	blocks := s.Segment(threeSessions)

	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Content)
	}
	if sb.String() != threeSessions {
		t.Error("concatenated blocks do not reproduce the original text")
	}
}

func TestSegmentOffsetsMatchContent(t *testing.T) {
	s := NewSegmenter()
	for _, b := range s.Segment(threeSessions) {
		if threeSessions[b.StartOffset:b.EndOffset] != b.Content {
			t.Errorf("block %d offsets do not slice to its content", b.Ordinal)
		}
	}
}

func TestSegmentEmptyText(t *testing.T) {
	s := NewSegmenter()
	if got := s.Segment(""); len(got) != 0 {
		t.Errorf("empty text: got %d blocks, want 0", len(got))
	}
	if got := s.Segment("  \n\t\n"); len(got) != 0 {
		t.Errorf("blank text: got %d blocks, want 0", len(got))
	}
}

// A file without any header is one implicit session spanning the whole text.
func TestSegmentNoHeaderIsImplicitSession(t *testing.T) {
	s := NewSegmenter()
	text := "free-form notes without any timestamp header\nsecond line\n"
	blocks := s.Segment(text)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Ordinal != 1 || blocks[0].Content != text {
		t.Errorf("implicit session does not span the whole text")
	}
}

func TestSegmentToleratesIndentedHeaders(t *testing.T) {
	s := NewSegmenter()
	text := "  # 2024-05-01 09:00:00\nindented header\n\t# 2024-05-01 10:00:00\ntab header\n"
	if got := s.Segment(text); len(got) != 2 {
		t.Fatalf("got %d blocks, want 2", len(got))
	}
}

func TestResolveRange(t *testing.T) {
	s := NewSegmenter()

	tests := []struct {
		name       string
		start, end int
		wantEmpty  bool
		contains   []string
	}{
		{
			name:  "single block",
			start: 2, end: 2,
			contains: []string{"afternoon debugging"},
		},
		{
			name:  "multi block range concatenates all blocks",
			start: 1, end: 3,
			contains: []string{"morning discussion", "afternoon debugging", "next day wrap-up"},
		},
		{
			name:  "end past last ordinal is clamped",
			start: 3, end: 99,
			contains: []string{"next day wrap-up"},
		},
		{
			name:  "fully out of range",
			start: 10, end: 12,
			wantEmpty: true,
		},
		{
			name:  "inverted range",
			start: 3, end: 1,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := s.ResolveRange(threeSessions, tt.start, tt.end)
			if tt.wantEmpty {
				if span.Content != "" {
					t.Fatalf("want empty span, got %q", span.Content)
				}
				return
			}
			if span.Content == "" {
				t.Fatal("want non-empty span")
			}
			for _, want := range tt.contains {
				if !strings.Contains(span.Content, want) {
					t.Errorf("span missing %q", want)
				}
			}
			if threeSessions[span.StartOffset:span.EndOffset] != span.Content {
				t.Error("span offsets do not slice to its content")
			}
		})
	}
}

func TestResolveRangeCoversHeaders(t *testing.T) {
	s := NewSegmenter()
	n := s.Count(threeSessions)
	for start := 1; start <= n; start++ {
		for end := start; end <= n; end++ {
			span := s.ResolveRange(threeSessions, start, end)
			if span.Content == "" {
				t.Errorf("range (%d,%d): empty span", start, end)
			}
		}
	}
}
