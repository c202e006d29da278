package pptx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// SlideData holds the text and run structure read back from one slide.
type SlideData struct {
	SlideNumber int        `json:"slide_number"`
	Text        string     `json:"text"`
	Shapes      []ShapeDoc `json:"shapes"`
}

// ShapeDoc is one shape's runs as found in the slide XML.
type ShapeDoc struct {
	Runs []RunDoc `json:"runs"`
}

// RunDoc mirrors the run attributes the writer emits.
type RunDoc struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Size   int    `json:"size,omitempty"` // pt
	Font   string `json:"font,omitempty"`
	Color  string `json:"color,omitempty"`
}

// ExtractSlideContent reads every slide of a PPTX package and returns its
// text and run structure keyed by slide number.
func ExtractSlideContent(pptxPath string) (map[int]SlideData, error) {
	r, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	result := make(map[int]SlideData)

	for _, f := range r.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		baseName := filepath.Base(f.Name)
		numStr := strings.TrimSuffix(strings.TrimPrefix(baseName, "slide"), ".xml")
		slideNum, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			continue
		}
		shapes, plainText, err := parseSlideXML(rc)
		rc.Close()
		if err != nil {
			continue // skip unreadable slides
		}

		result[slideNum] = SlideData{
			SlideNumber: slideNum,
			Text:        strings.TrimSpace(plainText),
			Shapes:      shapes,
		}
	}

	return result, nil
}

func parseSlideXML(r io.Reader) ([]ShapeDoc, string, error) {
	dec := xml.NewDecoder(r)

	var shapes []ShapeDoc
	var textBuilder strings.Builder

	var currentShape *ShapeDoc
	var currentRun *RunDoc

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", err
		}

		switch el := tok.(type) {

		case xml.StartElement:
			switch el.Name.Local {

			case "sp":
				currentShape = &ShapeDoc{}

			case "r":
				currentRun = &RunDoc{}

			case "rPr":
				if currentRun != nil {
					for _, a := range el.Attr {
						switch a.Name.Local {
						case "b":
							currentRun.Bold = a.Value == "1"
						case "i":
							currentRun.Italic = a.Value == "1"
						case "sz":
							if sz, err := strconv.Atoi(a.Value); err == nil {
								currentRun.Size = sz / 100 // 1/100 pt
							}
						}
					}
				}

			case "latin":
				if currentRun != nil {
					for _, a := range el.Attr {
						if a.Name.Local == "typeface" {
							currentRun.Font = a.Value
						}
					}
				}

			case "srgbClr":
				if currentRun != nil {
					for _, a := range el.Attr {
						if a.Name.Local == "val" {
							currentRun.Color = a.Value
						}
					}
				}

			case "t":
				if currentRun != nil {
					var text string
					if err := dec.DecodeElement(&text, &el); err == nil {
						currentRun.Text = text
					}
				}
			}

		case xml.EndElement:
			switch el.Name.Local {

			case "r":
				if currentShape != nil && currentRun != nil && currentRun.Text != "" {
					currentShape.Runs = append(currentShape.Runs, *currentRun)
					textBuilder.WriteString(currentRun.Text)
					textBuilder.WriteString(" ")
				}
				currentRun = nil

			case "sp":
				if currentShape != nil && len(currentShape.Runs) > 0 {
					shapes = append(shapes, *currentShape)
				}
				currentShape = nil
			}
		}
	}

	return shapes, textBuilder.String(), nil
}
