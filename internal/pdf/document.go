package pdf

import "errors"

var (
	// ErrWrongPasswordOrCorrupted is returned when the document is encrypted and the
	// supplied password does not open it, or its encryption metadata is unreadable.
	ErrWrongPasswordOrCorrupted = errors.New("pdf: wrong password or corrupted encryption")
	// ErrMalformedDocument is returned when the document structure cannot be parsed.
	ErrMalformedDocument = errors.New("pdf: malformed document")
	// ErrPageOutOfRange is returned for page indexes outside [0, NumPages).
	ErrPageOutOfRange = errors.New("pdf: page out of range")
)

// Table is a grid of cell text as laid out on a page.
// Row 0 is always the header row; absent cells are empty strings.
type Table [][]string

// Columns returns the width of the header row.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Body returns every row after the header.
func (t Table) Body() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Document is an opened statement. Pages are zero-indexed.
// Callers must Close it on every exit path.
type Document interface {
	NumPages() int
	Text(page int) (string, error)
	Tables(page int) ([]Table, error)
	DominantTable(page int) (Table, bool, error)
	Close() error
}

// Opener opens an in-memory document, optionally protected by a password.
type Opener interface {
	Open(data []byte, password string) (Document, error)
}

// Dominant picks the most prominent table: the one covering the most cells.
// The earliest table wins a tie.
func Dominant(tables []Table) (Table, bool) {
	var best Table
	bestSize := 0
	for _, t := range tables {
		if size := len(t) * t.Columns(); size > bestSize {
			best, bestSize = t, size
		}
	}
	return best, bestSize > 0
}
