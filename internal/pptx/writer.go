// Package pptx writes minimal PresentationML packages (one slide master,
// one blank layout, text-box shapes with styled runs) and reads the text
// content back out of existing files.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// EMU is the OOXML coordinate unit: 914400 per inch.
const emuPerInch = 914400

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(in * emuPerInch)
}

// Run is one styled stretch of text inside a paragraph. Size is in
// points; Color is an RRGGBB hex string without the leading '#'.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
	Color  string
	Font   string
}

// Paragraph groups runs with a shared alignment ("l", "ctr", "r"; empty
// means inherited).
type Paragraph struct {
	Align string
	Runs  []Run
}

// TextBox is a positioned text frame. Coordinates and extents are EMU.
// Anchor "ctr" vertically centers the text.
type TextBox struct {
	X, Y, W, H int64
	Anchor     string
	Paragraphs []Paragraph
}

// Slide is an ordered list of text boxes.
type Slide struct {
	Boxes []TextBox
}

// AddTextBox appends a text box to the slide.
func (s *Slide) AddTextBox(box TextBox) {
	s.Boxes = append(s.Boxes, box)
}

// Presentation accumulates slides and serializes them as a .pptx package.
type Presentation struct {
	Title  string
	Author string
	slides []*Slide
}

// New returns an empty presentation.
func New() *Presentation {
	return &Presentation{}
}

// AddSlide appends a slide and returns it for population.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount reports the number of slides added so far.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Save writes the package to path.
func (p *Presentation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := p.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Write serializes the package to w.
func (p *Presentation) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", p.contentTypesXML()},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", p.corePropsXML()},
		{"docProps/app.xml", p.appPropsXML()},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, s := range p.slides {
		num := i + 1
		parts = append(parts,
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", num), slideXML(s),
			},
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", num), slideRelsXML,
			},
		)
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

func slideXML(s *Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pmlNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	// Shape ids 1 and the group frame are reserved; text boxes start at 2.
	for i, box := range s.Boxes {
		writeTextBox(&b, i+2, box)
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func writeTextBox(b *strings.Builder, id int, box TextBox) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/>`, id, id-1)
	b.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		box.X, box.Y, box.W, box.H)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)

	b.WriteString(`<p:txBody>`)
	if box.Anchor != "" {
		fmt.Fprintf(b, `<a:bodyPr wrap="square" anchor="%s"><a:normAutofit/></a:bodyPr>`, box.Anchor)
	} else {
		b.WriteString(`<a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr>`)
	}
	b.WriteString(`<a:lstStyle/>`)

	for _, para := range box.Paragraphs {
		b.WriteString(`<a:p>`)
		if para.Align != "" {
			fmt.Fprintf(b, `<a:pPr algn="%s"/>`, para.Align)
		}
		for _, run := range para.Runs {
			writeRun(b, run)
		}
		b.WriteString(`</a:p>`)
	}

	b.WriteString(`</p:txBody></p:sp>`)
}

func writeRun(b *strings.Builder, run Run) {
	b.WriteString(`<a:r><a:rPr lang="en-US"`)
	if run.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, run.Size*100)
	}
	if run.Bold {
		b.WriteString(` b="1"`)
	}
	if run.Italic {
		b.WriteString(` i="1"`)
	}
	b.WriteString(` dirty="0">`)
	if run.Color != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, run.Color)
	}
	if run.Font != "" {
		fmt.Fprintf(b, `<a:latin typeface="%s"/>`, escapeXML(run.Font))
	}
	b.WriteString(`</a:rPr>`)
	fmt.Fprintf(b, `<a:t>%s</a:t></a:r>`, escapeXML(run.Text))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func (p *Presentation) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pmlNamespaces + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	// 10 x 7.5 inch canvas, same geometry the slide frames assume.
	b.WriteString(`<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1)
	}
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`, len(p.slides)+2)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (p *Presentation) corePropsXML() string {
	title := p.Title
	if title == "" {
		title = "Presentation"
	}
	created := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	return xmlHeader +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escapeXML(title) + `</dc:title>` +
		`<dc:creator>` + escapeXML(p.Author) + `</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + created + `</dcterms:created>` +
		`</cp:coreProperties>`
}

func (p *Presentation) appPropsXML() string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>PraisonAIPPT</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, len(p.slides)) +
		`</Properties>`
}
