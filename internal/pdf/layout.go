package pdf

import (
	"errors"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Layout thresholds, in points.
const (
	rowTolerance    = 3.0
	maxRowGap       = 60.0
	minTableColumns = 3
	defaultFontSize = 8.0
)

// Average glyph advance as a fraction of the font size.
const (
	monoAdvance         = 0.6
	proportionalAdvance = 0.5
)

var (
	topPattern      = regexp.MustCompile(`top:\s*(-?\d+(?:\.\d+)?)pt`)
	leftPattern     = regexp.MustCompile(`left:\s*(-?\d+(?:\.\d+)?)pt`)
	fontSizePattern = regexp.MustCompile(`font-size:\s*(\d+(?:\.\d+)?)pt`)
)

// fragment is one positioned text line of MuPDF's HTML output.
type fragment struct {
	top  float64
	left float64
	text string
	size float64
	mono bool
}

// charWidth estimates the advance of one character of f.
func (f fragment) charWidth() float64 {
	size := f.size
	if size <= 0 {
		size = defaultFontSize
	}
	if f.mono {
		return size * monoAdvance
	}
	return size * proportionalAdvance
}

type visualRow struct {
	top   float64
	cells []fragment
}

// TablesFromHTML rebuilds table grids from MuPDF's positioned HTML page output.
//
// MuPDF emits one positioned line per run of nearby glyphs, so adjacent cells
// can arrive as one line. A line made of two or more consecutive labels of one
// of the headers is split back into one fragment per label, each placed at its
// estimated offset.
//
// Lines sharing a baseline form a visual row. A row with at least three
// fragments opens a table and fixes its column anchors. Later rows are mapped
// onto the nearest anchor; rows without a first-column cell are wrapped text of
// the previous row. A lone first-column fragment, a wider row, or a large
// vertical gap closes the table.
func TablesFromHTML(r io.Reader, headers ...[]string) ([]Table, error) {
	frags, err := readFragments(r)
	if err != nil {
		return nil, err
	}
	return buildTables(groupRows(splitHeaders(frags, headers))), nil
}

func readFragments(r io.Reader) ([]fragment, error) {
	z := html.NewTokenizer(r)

	var (
		frags []fragment
		cur   *fragment
		text  strings.Builder
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return frags, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "p":
				top, left, ok := position(tok)
				if !ok {
					cur = nil
					continue
				}
				cur = &fragment{top: top, left: left}
				text.Reset()
			case "br":
				if cur != nil {
					text.WriteByte(' ')
				}
			case "span":
				if cur != nil {
					applyFont(cur, tok)
				}
			case "tt":
				if cur != nil {
					cur.mono = true
				}
			}

		case html.TextToken:
			if cur != nil {
				text.Write(z.Text())
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) != "p" || cur == nil {
				continue
			}
			cur.text = strings.Join(strings.Fields(text.String()), " ")
			if cur.text != "" {
				frags = append(frags, *cur)
			}
			cur = nil
		}
	}
}

func position(tok html.Token) (top, left float64, ok bool) {
	for _, attr := range tok.Attr {
		if attr.Key != "style" {
			continue
		}
		t := topPattern.FindStringSubmatch(attr.Val)
		l := leftPattern.FindStringSubmatch(attr.Val)
		if t == nil || l == nil {
			return 0, 0, false
		}
		top, errT := strconv.ParseFloat(t[1], 64)
		left, errL := strconv.ParseFloat(l[1], 64)
		if errT != nil || errL != nil {
			return 0, 0, false
		}
		return top, left, true
	}
	return 0, 0, false
}

// applyFont records the first span's font size and family on f.
func applyFont(f *fragment, tok html.Token) {
	if f.size > 0 {
		return
	}
	for _, attr := range tok.Attr {
		if attr.Key != "style" {
			continue
		}
		if m := fontSizePattern.FindStringSubmatch(attr.Val); m != nil {
			f.size, _ = strconv.ParseFloat(m[1], 64)
		}
		style := strings.ToLower(attr.Val)
		if strings.Contains(style, "monospace") || strings.Contains(style, "courier") {
			f.mono = true
		}
	}
}

func splitHeaders(frags []fragment, headers [][]string) []fragment {
	if len(headers) == 0 {
		return frags
	}
	out := make([]fragment, 0, len(frags))
	for _, f := range frags {
		out = append(out, splitLabels(f, headers)...)
	}
	return out
}

// splitLabels splits f when its text is two or more consecutive labels of a
// header. Otherwise f is returned unchanged.
func splitLabels(f fragment, headers [][]string) []fragment {
	for _, labels := range headers {
		for start := range labels {
			ends, ok := matchLabels(f.text, labels[start:])
			if !ok {
				continue
			}
			parts := make([]fragment, len(ends))
			from := 0
			for i, end := range ends {
				part := f
				part.left = f.left + float64(utf8.RuneCountInString(f.text[:from]))*f.charWidth()
				part.text = f.text[from:end]
				parts[i] = part
				from = end + 1
			}
			return parts
		}
	}
	return []fragment{f}
}

// matchLabels reports the end offset of each label when text is a space
// separated run of at least two leading labels, compared case-insensitively.
func matchLabels(text string, labels []string) ([]int, bool) {
	var ends []int
	pos := 0
	for _, label := range labels {
		rest := text[pos:]
		if len(rest) < len(label) || !strings.EqualFold(rest[:len(label)], label) {
			break
		}
		pos += len(label)
		ends = append(ends, pos)
		if pos == len(text) {
			return ends, len(ends) >= 2
		}
		if text[pos] != ' ' {
			return nil, false
		}
		pos++
	}
	return nil, false
}

func groupRows(frags []fragment) []visualRow {
	sorted := append([]fragment(nil), frags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].top != sorted[j].top {
			return sorted[i].top < sorted[j].top
		}
		return sorted[i].left < sorted[j].left
	})

	var rows []visualRow
	for _, f := range sorted {
		if n := len(rows); n > 0 && f.top-rows[n-1].top <= rowTolerance {
			rows[n-1].cells = append(rows[n-1].cells, f)
			continue
		}
		rows = append(rows, visualRow{top: f.top, cells: []fragment{f}})
	}

	for i := range rows {
		cells := rows[i].cells
		sort.SliceStable(cells, func(a, b int) bool { return cells[a].left < cells[b].left })
	}
	return rows
}

type tableBuilder struct {
	anchors []float64
	rows    [][]string
	lastTop float64
}

func newTableBuilder(header visualRow) *tableBuilder {
	b := &tableBuilder{lastTop: header.top}
	cells := make([]string, len(header.cells))
	for i, c := range header.cells {
		b.anchors = append(b.anchors, c.left)
		cells[i] = c.text
	}
	b.rows = [][]string{cells}
	return b
}

// column maps a fragment to the anchor closest to its left edge. Right-aligned
// amounts often start a little left of their own header label, so the
// nearest anchor in either direction wins.
func (b *tableBuilder) column(left float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, anchor := range b.anchors {
		if d := math.Abs(left - anchor); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// place spreads a row's fragments over the table columns.
func (b *tableBuilder) place(r visualRow) (cells []string, hasFirst bool) {
	cells = make([]string, len(b.anchors))
	for _, f := range r.cells {
		col := b.column(f.left)
		if col == 0 {
			hasFirst = true
		}
		if cells[col] == "" {
			cells[col] = f.text
		} else {
			cells[col] += " " + f.text
		}
	}
	return cells, hasFirst
}

func (b *tableBuilder) add(top float64, cells []string) {
	b.rows = append(b.rows, cells)
	b.lastTop = top
}

func (b *tableBuilder) wrap(top float64, cells []string) {
	last := b.rows[len(b.rows)-1]
	for col, text := range cells {
		switch {
		case text == "":
		case last[col] == "":
			last[col] = text
		default:
			last[col] += "\n" + text
		}
	}
	b.lastTop = top
}

func buildTables(rows []visualRow) []Table {
	var (
		tables []Table
		cur    *tableBuilder
	)

	flush := func() {
		if cur != nil && len(cur.rows) > 1 {
			tables = append(tables, Table(cur.rows))
		}
		cur = nil
	}

	for _, r := range rows {
		if cur != nil && r.top-cur.lastTop > maxRowGap {
			flush()
		}

		if cur == nil {
			if len(r.cells) >= minTableColumns {
				cur = newTableBuilder(r)
			}
			continue
		}

		if len(r.cells) > len(cur.anchors) {
			flush()
			cur = newTableBuilder(r)
			continue
		}

		cells, hasFirst := cur.place(r)
		switch {
		case hasFirst && len(r.cells) == 1:
			flush()
		case hasFirst:
			cur.add(r.top, cells)
		default:
			cur.wrap(r.top, cells)
		}
	}
	flush()

	return tables
}
