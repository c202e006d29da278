// Package deck assembles a pptx.Presentation from a verses.Presentation:
// a title slide, a divider slide per section, and one slide per text
// chunk of every verse, with highlight terms rendered as bold accent runs.
package deck

import (
	"fmt"
	"strings"

	"github.com/MervinPraison/PraisonAIPPT/internal/pptx"
	"github.com/MervinPraison/PraisonAIPPT/internal/text"
	"github.com/MervinPraison/PraisonAIPPT/internal/verses"
)

// Options controls chunking and styling. Zero values fall back to the
// defaults below.
type Options struct {
	// CustomTitle overrides the presentation title, blanks the subtitle
	// and suppresses section divider slides.
	CustomTitle string
	// MaxChars is the chunk size handed to the segmenter.
	MaxChars int
	// Author is recorded in the document properties.
	Author string

	HighlightColor string
	BodyColor      string
	ReferenceColor string
	SectionColor   string
}

const (
	defaultHighlightColor = "FF8C00"
	defaultBodyColor      = "000000"
	defaultReferenceColor = "646464"
	defaultSectionColor   = "003366"

	bodySize      = 24
	referenceSize = 18
	sectionSize   = 36
	titleSize     = 40
	subtitleSize  = 20
)

func (o *Options) fill() {
	if o.MaxChars <= 0 {
		o.MaxChars = text.DefaultMaxLength
	}
	if o.HighlightColor == "" {
		o.HighlightColor = defaultHighlightColor
	}
	if o.BodyColor == "" {
		o.BodyColor = defaultBodyColor
	}
	if o.ReferenceColor == "" {
		o.ReferenceColor = defaultReferenceColor
	}
	if o.SectionColor == "" {
		o.SectionColor = defaultSectionColor
	}
}

// Build renders the whole deck. Slide order follows the insertion order
// of sections and verses in the input.
func Build(p *verses.Presentation, opts Options) *pptx.Presentation {
	opts.fill()

	out := pptx.New()

	title := p.Title
	subtitle := p.Subtitle
	if opts.CustomTitle != "" {
		title = opts.CustomTitle
		subtitle = ""
	}
	if title == "" {
		title = "Bible Verses Collection"
	}
	if subtitle == "" && opts.CustomTitle == "" {
		subtitle = "Selected Scriptures"
	}
	out.Title = title
	out.Author = opts.Author

	addTitleSlide(out, title, subtitle)

	for _, section := range p.Sections {
		if len(section.Verses) == 0 {
			continue
		}
		if opts.CustomTitle == "" {
			addSectionSlide(out, section.Name, opts)
		}
		for _, verse := range section.Verses {
			addVerseSlides(out, verse, opts)
		}
	}

	return out
}

// OutputName derives the output file name: the explicit name when given,
// otherwise the sanitized custom title or presentation title. The .pptx
// extension is always appended when missing.
func OutputName(p *verses.Presentation, customTitle, explicit string) string {
	name := explicit
	if name == "" {
		base := customTitle
		if base == "" {
			base = p.Title
		}
		name = verses.SanitizeFilename(base)
	}
	if !strings.HasSuffix(name, ".pptx") {
		name += ".pptx"
	}
	return name
}

func addTitleSlide(out *pptx.Presentation, title, subtitle string) {
	s := out.AddSlide()
	s.AddTextBox(pptx.TextBox{
		X: pptx.Inches(0.5), Y: pptx.Inches(2.3), W: pptx.Inches(9), H: pptx.Inches(1.5),
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: title, Size: titleSize, Bold: true, Color: defaultSectionColor}},
		}},
	})
	if subtitle != "" {
		s.AddTextBox(pptx.TextBox{
			X: pptx.Inches(0.5), Y: pptx.Inches(4), W: pptx.Inches(9), H: pptx.Inches(1),
			Paragraphs: []pptx.Paragraph{{
				Align: "ctr",
				Runs:  []pptx.Run{{Text: subtitle, Size: subtitleSize, Color: defaultReferenceColor}},
			}},
		})
	}
}

func addSectionSlide(out *pptx.Presentation, name string, opts Options) {
	s := out.AddSlide()
	s.AddTextBox(pptx.TextBox{
		X: pptx.Inches(0.5), Y: pptx.Inches(2.8), W: pptx.Inches(9), H: pptx.Inches(1.5),
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: name, Size: sectionSize, Color: opts.SectionColor}},
		}},
	})
}

func addVerseSlides(out *pptx.Presentation, verse verses.Verse, opts Options) {
	chunks := text.Segment(verse.Text, opts.MaxChars)

	for i, chunk := range chunks {
		reference := verse.Reference
		if len(chunks) > 1 {
			reference += fmt.Sprintf(" (Part %d)", i+1)
		}

		s := out.AddSlide()
		s.AddTextBox(pptx.TextBox{
			X: pptx.Inches(1), Y: pptx.Inches(2), W: pptx.Inches(8), H: pptx.Inches(3),
			Anchor:     "ctr",
			Paragraphs: []pptx.Paragraph{verseParagraph(chunk, verse.Highlights, opts)},
		})
		s.AddTextBox(pptx.TextBox{
			X: pptx.Inches(1), Y: pptx.Inches(5.5), W: pptx.Inches(8), H: pptx.Inches(1),
			Paragraphs: []pptx.Paragraph{{
				Align: "ctr",
				Runs:  []pptx.Run{{Text: reference, Size: referenceSize, Italic: true, Color: opts.ReferenceColor}},
			}},
		})
	}
}

// verseParagraph renders the merger's span partition as styled runs:
// highlighted spans bold in the accent color, plain spans in the body
// color.
func verseParagraph(chunk string, highlights []string, opts Options) pptx.Paragraph {
	para := pptx.Paragraph{Align: "ctr"}

	for _, span := range text.ComputeSpans(chunk, highlights) {
		run := pptx.Run{
			Text:  chunk[span.Start:span.End],
			Size:  bodySize,
			Color: opts.BodyColor,
		}
		if span.Highlighted {
			run.Bold = true
			run.Color = opts.HighlightColor
		}
		para.Runs = append(para.Runs, run)
	}

	if len(para.Runs) == 0 {
		para.Runs = []pptx.Run{{Text: chunk, Size: bodySize, Color: opts.BodyColor}}
	}
	return para
}
