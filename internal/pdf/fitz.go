package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

func init() {
	// pdfcpu otherwise creates a config directory under the user's home.
	api.DisableConfigDir()
}

// mupdfHandle is the part of *fitz.Document the extractor uses.
type mupdfHandle interface {
	NumPage() int
	Text(page int) (string, error)
	HTML(page int, header bool) (string, error)
	Close() error
}

// openMuPDF opens data with MuPDF. go-fitz hands back a live document even when
// it also reports an error (a password is needed, the content type is unknown),
// so the handle is returned alongside the error and must still be closed.
func openMuPDF(data []byte) (mupdfHandle, error) {
	doc, err := fitz.NewFromMemory(data)
	if doc == nil {
		return nil, err
	}
	return doc, err
}

// FitzOpener opens statements with MuPDF (go-fitz). Encrypted documents are
// decrypted in memory with pdfcpu first; nothing is written to disk.
type FitzOpener struct {
	logger  *zap.Logger
	headers [][]string
	open    func([]byte) (mupdfHandle, error)
}

// NewFitzOpener creates a new opener. headers lists the column labels of the
// tables expected in the documents; see TablesFromHTML.
func NewFitzOpener(logger *zap.Logger, headers ...[]string) *FitzOpener {
	return &FitzOpener{
		logger:  logger,
		headers: headers,
		open:    openMuPDF,
	}
}

// Open implements Opener.
func (o *FitzOpener) Open(data []byte, password string) (Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedDocument)
	}

	doc, err := o.open(data)
	if err == nil {
		return o.newDocument(doc), nil
	}
	o.release(doc)

	// MuPDF refuses documents that need a password; let pdfcpu decide whether
	// this is an encryption problem or a broken file.
	o.logger.Debug("Direct PDF open failed, attempting decryption", zap.Error(err))

	plain, err := decrypt(data, password)
	if err != nil {
		return nil, err
	}

	doc, err = o.open(plain)
	if err != nil {
		o.release(doc)
		return nil, fmt.Errorf("%w: reopening decrypted document: %v", ErrMalformedDocument, err)
	}

	o.logger.Debug("Opened encrypted PDF", zap.Int("pages", doc.NumPage()))
	return o.newDocument(doc), nil
}

// release closes a handle returned together with an open error.
func (o *FitzOpener) release(doc mupdfHandle) {
	if doc == nil {
		return
	}
	if err := doc.Close(); err != nil {
		o.logger.Warn("Failed to release MuPDF document", zap.Error(err))
	}
}

func (o *FitzOpener) newDocument(doc mupdfHandle) *fitzDocument {
	return &fitzDocument{
		doc:     doc,
		headers: o.headers,
		layouts: make(map[int][]Table),
	}
}

func decrypt(data []byte, password string) (plain []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			plain, err = nil, fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(data), &out, conf); err != nil {
		if isEncryptionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrWrongPasswordOrCorrupted, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return out.Bytes(), nil
}

// pdfcpu reports password and encryption-dictionary problems with these phrases.
var encryptionErrorPhrases = []string{
	"password",
	"unknown encryption",
	"unsupported encryption",
	"encrypt dict",
}

func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range encryptionErrorPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

type fitzDocument struct {
	doc     mupdfHandle
	headers [][]string

	mu      sync.Mutex
	layouts map[int][]Table
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Text(page int) (string, error) {
	if err := d.checkPage(page); err != nil {
		return "", err
	}
	text, err := d.doc.Text(page)
	if err != nil {
		return "", fmt.Errorf("extracting text from page %d: %w", page+1, err)
	}
	return text, nil
}

func (d *fitzDocument) Tables(page int) ([]Table, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if tables, ok := d.layouts[page]; ok {
		return tables, nil
	}

	markup, err := d.doc.HTML(page, false)
	if err != nil {
		return nil, fmt.Errorf("extracting layout from page %d: %w", page+1, err)
	}

	tables, err := TablesFromHTML(strings.NewReader(markup), d.headers...)
	if err != nil {
		return nil, fmt.Errorf("reading layout of page %d: %w", page+1, err)
	}
	d.layouts[page] = tables
	return tables, nil
}

func (d *fitzDocument) DominantTable(page int) (Table, bool, error) {
	tables, err := d.Tables(page)
	if err != nil {
		return nil, false, err
	}
	table, ok := Dominant(tables)
	return table, ok, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}

func (d *fitzDocument) checkPage(page int) error {
	if page < 0 || page >= d.doc.NumPage() {
		return fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	return nil
}
