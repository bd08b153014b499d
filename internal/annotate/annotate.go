// Package annotate overlays a learning analysis onto generated prose.
//
// Each paragraph becomes an ordered list of segments. Grammar sentences are
// tagged first (exact, case-sensitive), then vocabulary words (case-insensitive)
// inside whatever plain text remains. Every grammar point and every word claims
// at most one span: the first occurrence, scanning segments left to right. A
// word that only occurs inside a grammar span is not highlighted.
package annotate

import (
	"strings"
	"unicode/utf8"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
)

// Kind tells a renderer how to style a segment.
type Kind int

const (
	Plain Kind = iota
	Vocabulary
	Grammar
)

func (k Kind) String() string {
	switch k {
	case Vocabulary:
		return "vocabulary"
	case Grammar:
		return "grammar"
	default:
		return "plain"
	}
}

// Segment is a run of paragraph text with the annotation it carries, if any.
type Segment struct {
	Text    string
	Kind    Kind
	Vocab   *domain.VocabItem
	Grammar *domain.GrammarPoint
}

// matcher returns the byte span of the first match in text.
type matcher func(text string) (start, end int, ok bool)

// Paragraphs splits story content the way it is displayed: one paragraph per line.
func Paragraphs(content string) []string {
	return strings.Split(content, "\n")
}

// Annotate segments every paragraph of content.
func Annotate(content string, analysis domain.LearningAnalysis) [][]Segment {
	paras := Paragraphs(content)
	out := make([][]Segment, 0, len(paras))
	for _, p := range paras {
		out = append(out, Paragraph(p, analysis))
	}
	return out
}

// Paragraph segments a single paragraph.
func Paragraph(text string, analysis domain.LearningAnalysis) []Segment {
	segs := []Segment{{Text: text, Kind: Plain}}

	for _, g := range analysis.Grammar {
		g := g
		segs = split(segs, literal(g.Sentence), Segment{Kind: Grammar, Grammar: &g})
	}
	for _, v := range analysis.Vocabulary {
		v := v
		segs = split(segs, folded(v.Word), Segment{Kind: Vocabulary, Vocab: &v})
	}
	return segs
}

// split tags the first match found in the first matching Plain segment.
// Tagged segments are never rescanned, which is what keeps vocabulary out of
// grammar spans.
func split(segs []Segment, match matcher, tag Segment) []Segment {
	for i, seg := range segs {
		if seg.Kind != Plain {
			continue
		}
		start, end, ok := match(seg.Text)
		if !ok {
			continue
		}

		pieces := make([]Segment, 0, 3)
		if start > 0 {
			pieces = append(pieces, Segment{Text: seg.Text[:start], Kind: Plain})
		}
		tag.Text = seg.Text[start:end]
		pieces = append(pieces, tag)
		if end < len(seg.Text) {
			pieces = append(pieces, Segment{Text: seg.Text[end:], Kind: Plain})
		}

		out := make([]Segment, 0, len(segs)+len(pieces)-1)
		out = append(out, segs[:i]...)
		out = append(out, pieces...)
		out = append(out, segs[i+1:]...)
		return out
	}
	return segs
}

func literal(sentence string) matcher {
	return func(text string) (int, int, bool) {
		if sentence == "" {
			return 0, 0, false
		}
		i := strings.Index(text, sentence)
		if i < 0 {
			return 0, 0, false
		}
		return i, i + len(sentence), true
	}
}

func folded(word string) matcher {
	return func(text string) (int, int, bool) {
		return indexFold(text, word)
	}
}

// indexFold finds word in text under Unicode simple case folding and returns
// the span in text's own bytes, which may differ in length from word.
func indexFold(text, word string) (int, int, bool) {
	if word == "" {
		return 0, 0, false
	}
	for i := 0; i < len(text); {
		if n, ok := hasPrefixFold(text[i:], word); ok {
			return i, i + n, true
		}
		_, w := utf8.DecodeRuneInString(text[i:])
		i += w
	}
	return 0, 0, false
}

func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for i := 0; i < len(prefix); {
		if n >= len(s) {
			return 0, false
		}
		pr, pw := utf8.DecodeRuneInString(prefix[i:])
		sr, sw := utf8.DecodeRuneInString(s[n:])
		if (pr == utf8.RuneError && pw == 1) || (sr == utf8.RuneError && sw == 1) {
			// Invalid bytes only match themselves.
			if prefix[i] != s[n] {
				return 0, false
			}
			i, n = i+1, n+1
			continue
		}
		if sr != pr && !strings.EqualFold(string(sr), string(pr)) {
			return 0, false
		}
		i += pw
		n += sw
	}
	return n, true
}

// Join reassembles the paragraph text from its segments.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Hits returns the annotated segments of all paragraphs in reading order.
func Hits(paras [][]Segment) []Segment {
	var hits []Segment
	for _, p := range paras {
		for _, s := range p {
			if s.Kind != Plain {
				hits = append(hits, s)
			}
		}
	}
	return hits
}
