package pdf

import (
	"errors"
	"testing"

	"mpesa-wrap/internal/pdf/pdftest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	userPassword  = "123456"
	ownerPassword = "owner-secret"
)

func headerPage() pdftest.Page {
	return pdftest.Page{
		{X: 40, Y: 40, Value: "M-PESA STATEMENT"},
		{X: 40, Y: 60, Value: "Customer Name: JANE DOE"},
		{X: 40, Y: 72, Value: "Mobile Number: 0712345678"},
	}
}

func encryptedStatement(t *testing.T) []byte {
	t.Helper()
	data, err := pdftest.Encrypt(pdftest.Build(headerPage()), userPassword, ownerPassword)
	require.NoError(t, err)
	return data
}

// handleCounter wraps the opener's MuPDF calls and tracks every live handle.
type handleCounter struct {
	opened int
	closed int
	open   func([]byte) (mupdfHandle, error)
}

type countedHandle struct {
	mupdfHandle
	c *handleCounter
}

func (h countedHandle) Close() error {
	h.c.closed++
	return h.mupdfHandle.Close()
}

func (c *handleCounter) wrap(data []byte) (mupdfHandle, error) {
	doc, err := c.open(data)
	if doc == nil {
		return nil, err
	}
	c.opened++
	return countedHandle{mupdfHandle: doc, c: c}, err
}

func newCountingOpener(open func([]byte) (mupdfHandle, error)) (*FitzOpener, *handleCounter) {
	c := &handleCounter{open: open}
	o := NewFitzOpener(zap.NewNop())
	o.open = c.wrap
	return o, c
}

// failingHandle is what MuPDF returns next to an error for a document it
// cannot read.
type failingHandle struct{}

func (failingHandle) NumPage() int { return 0 }
func (failingHandle) Text(int) (string, error) { return "", nil }
func (failingHandle) HTML(int, bool) (string, error) { return "", nil }
func (failingHandle) Close() error { return nil }

func TestFitzOpenerPlainDocument(t *testing.T) {
	o, c := newCountingOpener(openMuPDF)

	doc, err := o.Open(pdftest.Build(headerPage()), "")
	require.NoError(t, err)

	assert.Equal(t, 1, doc.NumPages())
	text, err := doc.Text(0)
	require.NoError(t, err)
	assert.Contains(t, text, "Customer Name: JANE DOE")

	require.NoError(t, doc.Close())
	assert.Equal(t, c.opened, c.closed)
}

func TestFitzOpenerEncryptedDocument(t *testing.T) {
	encrypted := encryptedStatement(t)

	tests := []struct {
		name     string
		data     []byte
		password string
		wantErr  error
		wantText string
	}{
		{name: "user password", data: encrypted, password: userPassword, wantText: "Customer Name: JANE DOE"},
		{name: "owner password", data: encrypted, password: ownerPassword, wantText: "Mobile Number: 0712345678"},
		{name: "wrong password", data: encrypted, password: "654321", wantErr: ErrWrongPasswordOrCorrupted},
		{name: "missing password", data: encrypted, password: "", wantErr: ErrWrongPasswordOrCorrupted},
		{name: "garbage", data: []byte("this is not a statement at all"), password: userPassword, wantErr: ErrMalformedDocument},
		{name: "truncated", data: encrypted[:48], password: userPassword, wantErr: ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, c := newCountingOpener(openMuPDF)

			doc, err := o.Open(tt.data, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, doc)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, c.opened, c.closed, "every MuPDF handle is released")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.opened-1, c.closed, "only the returned document stays open")

			text, err := doc.Text(0)
			require.NoError(t, err)
			assert.Contains(t, text, tt.wantText)

			require.NoError(t, doc.Close())
			assert.Equal(t, c.opened, c.closed)
		})
	}
}

func TestFitzOpenerReleasesHandleWhenReopenFails(t *testing.T) {
	errUnreadable := errors.New("cannot open document")
	o, c := newCountingOpener(func([]byte) (mupdfHandle, error) {
		return failingHandle{}, errUnreadable
	})

	doc, err := o.Open(encryptedStatement(t), userPassword)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Equal(t, 2, c.opened)
	assert.Equal(t, 2, c.closed)
}

func TestFitzOpenerPageRange(t *testing.T) {
	doc, err := NewFitzOpener(zap.NewNop()).Open(pdftest.Build(headerPage()), "")
	require.NoError(t, err)
	defer doc.Close()

	_, err = doc.Text(1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	_, err = doc.Tables(-1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

var (
	ledgerLefts   = []float64{40, 96, 230, 440, 530, 610, 700}
	summaryLabels = []string{"TRANSACTION TYPE", "PAID IN", "PAID OUT"}
)

// closelySetLedger prints header labels only a few points apart, so MuPDF
// may extract neighbouring labels as one line.
func closelySetLedger() pdftest.Page {
	page := pdftest.Row(100, ledgerLefts, ledgerHeader...)
	page = append(page, pdftest.Row(112, ledgerLefts,
		"QAB1CD2EF3", "2026-01-05 08:15:00", "Customer Transfer", "Completed", "", "-1,000.00", "2,000.00")...)
	page = append(page, pdftest.Row(124, ledgerLefts,
		"QAB1CD2EF4", "2026-01-06 19:30:00", "Funds received", "Completed", "3,000.00", "", "5,000.00")...)
	return page
}

func TestFitzTablesSplitMergedHeader(t *testing.T) {
	data := pdftest.Build(closelySetLedger())

	doc, err := NewFitzOpener(zap.NewNop(), summaryLabels, ledgerHeader).Open(data, "")
	require.NoError(t, err)
	defer doc.Close()

	table, ok, err := doc.DominantTable(0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, ledgerHeader, table[0])
	assert.Equal(t, [][]string{
		{"QAB1CD2EF3", "2026-01-05 08:15:00", "Customer Transfer", "Completed", "", "-1,000.00", "2,000.00"},
		{"QAB1CD2EF4", "2026-01-06 19:30:00", "Funds received", "Completed", "3,000.00", "", "5,000.00"},
	}, table.Body())
}
