package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	textColor = "000000"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	reQuote    = regexp.MustCompile(`^>\s?(.*)$`)
)

// Docx renders the model's markdown reply as a Word document held in memory.
func Docx(title, markdown string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}

	w := &noteWriter{doc: doc}
	if title != "" {
		w.heading(title, titleSize)
	}
	for _, line := range strings.Split(markdown, "\n") {
		w.line(strings.TrimSpace(line))
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

// noteWriter maps one markdown line to one paragraph.
type noteWriter struct {
	doc *docx.RootDoc
}

func (w *noteWriter) line(s string) {
	if s == "" || s == "---" || s == "***" {
		return
	}

	if m := reHeading.FindStringSubmatch(s); m != nil {
		w.heading(m[2], headingSize(len(m[1])))
		return
	}
	if m := reBullet.FindStringSubmatch(s); m != nil {
		w.rich("• "+m[1], false)
		return
	}
	if m := reNumbered.FindStringSubmatch(s); m != nil {
		w.rich(m[1]+". "+m[2], false)
		return
	}
	if m := reQuote.FindStringSubmatch(s); m != nil {
		if m[1] != "" {
			w.rich(m[1], true)
		}
		return
	}
	w.rich(s, false)
}

func (w *noteWriter) heading(text string, size uint64) {
	w.run(w.doc.AddParagraph(""), text, size).Bold(true)
}

// rich emits text as alternating plain and **bold** runs.
func (w *noteWriter) rich(text string, italic bool) {
	p := w.doc.AddParagraph("")
	parts := reBold.Split(text, -1)
	bolds := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			r := w.run(p, part, fontSize)
			if italic {
				r.Italic(true)
			}
		}
		if i < len(bolds) {
			r := w.run(p, bolds[i][1], fontSize).Bold(true)
			if italic {
				r.Italic(true)
			}
		}
	}
}

func (w *noteWriter) run(p *docx.Paragraph, text string, size uint64) *docx.Run {
	return p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color(textColor)
}

func headingSize(level int) uint64 {
	if level >= 4 {
		return fontSize
	}
	return uint64(titleSize + 1 - level)
}

func cleanMarkdownInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "", "*", "").Replace(s)
}
