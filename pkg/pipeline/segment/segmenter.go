package segment

import (
	"regexp"
	"strings"
)

// headerRe matches a session header line: `# YYYY-MM-DD HH:MM:SS` at line
// start, tolerating leading whitespace.
var headerRe = regexp.MustCompile(`(?m)^[ \t]*#\s+\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}`)

// Block is one raw header-delimited session. Ordinals are 1-based and assigned
// in document order; offsets index into the original text.
type Block struct {
	Ordinal     int
	StartOffset int
	EndOffset   int
	Content     string
}

// Span is the resolved extent of an ordinal range, produced by the second pass
// of the two-pass extraction protocol.
type Span struct {
	StartOffset int
	EndOffset   int
	Content     string
}

type Segmenter struct{}

func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment splits raw text into ordered header-delimited blocks. A block runs
// from its header line up to (but not including) the next header line or the
// end of text. Text before the first header is not a block. A non-empty text
// with no header at all is treated as a single implicit session spanning the
// whole text; an empty text yields no sessions.
func (s *Segmenter) Segment(text string) []Block {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	locs := headerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Block{{
			Ordinal:     1,
			StartOffset: 0,
			EndOffset:   len(text),
			Content:     text,
		}}
	}

	blocks := make([]Block, 0, len(locs))
	for i, loc := range locs {
		start := loc[0]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, Block{
			Ordinal:     i + 1,
			StartOffset: start,
			EndOffset:   end,
			Content:     text[start:end],
		})
	}
	return blocks
}

// Count returns the number of header-delimited blocks in text without
// materializing their content.
func (s *Segmenter) Count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := len(headerRe.FindAllStringIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// ResolveRange maps a model-proposed ordinal range back to character offsets
// and concatenated content. Ordinals outside [1, N] contribute nothing; a range
// with no existing ordinal yields an empty span. It never fails: the ordinals
// come from a model and are untrusted.
func (s *Segmenter) ResolveRange(text string, startIndex, endIndex int) Span {
	if startIndex > endIndex {
		return Span{}
	}
	blocks := s.Segment(text)

	var sb strings.Builder
	span := Span{StartOffset: -1}
	for _, b := range blocks {
		if b.Ordinal < startIndex || b.Ordinal > endIndex {
			continue
		}
		if span.StartOffset < 0 {
			span.StartOffset = b.StartOffset
		}
		span.EndOffset = b.EndOffset
		sb.WriteString(b.Content)
	}
	if span.StartOffset < 0 {
		return Span{}
	}
	span.Content = sb.String()
	return span
}
