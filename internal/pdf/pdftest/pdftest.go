// Package pdftest builds small real PDF documents in memory for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

const (
	// FontSize is the size every string is drawn at.
	FontSize = 8.0
	// CharWidth is the advance of one Courier glyph at FontSize.
	CharWidth = FontSize * 0.6

	pageWidth  = 842.0
	pageHeight = 595.0
)

// Text is a string drawn with its baseline origin at X, Y points from the
// top-left corner of the page.
type Text struct {
	X, Y  float64
	Value string
}

// Page is the text drawn on one page.
type Page []Text

// Row lays out cells left to right on baseline y, each starting at the
// matching x offset.
func Row(y float64, xs []float64, cells ...string) Page {
	var page Page
	for i, cell := range cells {
		if cell == "" || i >= len(xs) {
			continue
		}
		page = append(page, Text{X: xs[i], Y: y, Value: cell})
	}
	return page
}

// Build renders an unencrypted landscape A4 PDF with one Courier font.
func Build(pages ...Page) []byte {
	if len(pages) == 0 {
		pages = []Page{nil}
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		pagesObject(len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}
	for i, page := range pages {
		content := contentStream(page)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.0f %.0f] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
				pageWidth, pageHeight, 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// Encrypt protects doc with AES-256 under the given passwords.
func Encrypt(doc []byte, userPW, ownerPW string) ([]byte, error) {
	conf := model.NewAESConfiguration(userPW, ownerPW, 256)

	var out bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(doc), &out, conf); err != nil {
		return nil, fmt.Errorf("encrypting fixture: %w", err)
	}
	return out.Bytes(), nil
}

func pagesObject(count int) string {
	kids := make([]string, count)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	return fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), count)
}

func contentStream(page Page) string {
	var b strings.Builder
	for _, text := range page {
		fmt.Fprintf(&b, "BT /F1 %.0f Tf %.2f %.2f Td (%s) Tj ET\n",
			FontSize, text.X, pageHeight-text.Y, escape(text.Value))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var escaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func escape(s string) string {
	return escaper.Replace(s)
}
