package verses

import (
	"fmt"
	"os"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// LoadMarkdown builds a Presentation from a Markdown outline:
//
//	# Presentation Title
//	An optional subtitle paragraph.
//	## Section Name
//	**Psalm 71:2** In your **righteousness**, rescue me and deliver me.
//
// The level-1 heading is the title, the first paragraph before any section
// is the subtitle, level-2 headings open sections, and every following
// paragraph is a verse. The leading bold run of a verse paragraph is its
// reference; any further bold runs stay in the text and double as
// highlight terms.
func LoadMarkdown(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading markdown file %s: %w", path, err)
	}
	return ParseMarkdown(data)
}

// ParseMarkdown parses a Markdown outline into a Presentation.
func ParseMarkdown(data []byte) (*Presentation, error) {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse(data)

	p := &Presentation{Sections: []Section{}}

	for node := root.FirstChild; node != nil; node = node.Next {
		switch node.Type {
		case blackfriday.Heading:
			switch node.HeadingData.Level {
			case 1:
				p.Title = nodeText(node)
			case 2:
				p.Sections = append(p.Sections, Section{Name: nodeText(node)})
			}

		case blackfriday.Paragraph:
			if len(p.Sections) == 0 {
				if p.Subtitle == "" {
					p.Subtitle = nodeText(node)
				}
				continue
			}
			v, err := parseVerseParagraph(node)
			if err != nil {
				return nil, err
			}
			sec := &p.Sections[len(p.Sections)-1]
			sec.Verses = append(sec.Verses, v)
		}
	}

	if p.Title == "" {
		return nil, fmt.Errorf("markdown outline has no level-1 title heading")
	}
	return p, nil
}

// parseVerseParagraph splits a verse paragraph into reference, text and
// highlight terms. The first strong run is the reference; later strong
// runs are highlights and remain part of the text.
func parseVerseParagraph(para *blackfriday.Node) (Verse, error) {
	var v Verse
	var b strings.Builder
	sawReference := false

	for child := para.FirstChild; child != nil; child = child.Next {
		switch child.Type {
		case blackfriday.Strong:
			if !sawReference {
				v.Reference = strings.TrimSpace(nodeText(child))
				sawReference = true
				continue
			}
			term := nodeText(child)
			v.Highlights = append(v.Highlights, term)
			b.WriteString(term)

		default:
			b.WriteString(nodeText(child))
		}
	}

	if !sawReference {
		return v, fmt.Errorf("verse paragraph %q has no bold reference", strings.TrimSpace(b.String()))
	}
	v.Text = strings.TrimSpace(b.String())
	return v, nil
}

// nodeText flattens a node subtree to its literal text, with soft line
// breaks collapsed to spaces.
func nodeText(n *blackfriday.Node) string {
	var b strings.Builder
	n.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch node.Type {
		case blackfriday.Text, blackfriday.Code:
			b.Write(node.Literal)
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			b.WriteByte(' ')
		}
		return blackfriday.GoToNext
	})
	return b.String()
}
