package pdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTableShape(t *testing.T) {
	var empty Table
	assert.Equal(t, 0, empty.Columns())
	assert.Nil(t, empty.Body())

	headerOnly := Table{{"a", "b"}}
	assert.Equal(t, 2, headerOnly.Columns())
	assert.Nil(t, headerOnly.Body())

	full := Table{{"a", "b"}, {"1", "2"}}
	assert.Equal(t, [][]string{{"1", "2"}}, full.Body())
}

func TestDominant(t *testing.T) {
	small := Table{{"a", "b", "c"}, {"1", "2", "3"}}
	wide := Table{{"a", "b", "c", "d", "e", "f", "g"}, {"1", "2", "3", "4", "5", "6", "7"}}
	sameAsWide := Table{{"a", "b", "c", "d", "e", "f", "g"}, {"x", "x", "x", "x", "x", "x", "x"}}

	tests := []struct {
		name   string
		tables []Table
		want   Table
		wantOK bool
	}{
		{name: "no tables", tables: nil, wantOK: false},
		{name: "only empty tables", tables: []Table{{}, nil}, wantOK: false},
		{name: "largest wins", tables: []Table{small, wide}, want: wide, wantOK: true},
		{name: "first wins a tie", tables: []Table{wide, sameAsWide}, want: wide, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Dominant(tt.tables)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEncryptionError(t *testing.T) {
	assert.True(t, isEncryptionError(errors.New("pdfcpu: please provide the correct password")))
	assert.True(t, isEncryptionError(errors.New("corrupt encrypt dict")))
	assert.True(t, isEncryptionError(errors.New("Unsupported Encryption algorithm")))
	assert.False(t, isEncryptionError(errors.New("pdfcpu: no header version available")))
}

func TestFitzOpenerRejectsEmptyInput(t *testing.T) {
	doc, err := NewFitzOpener(zap.NewNop()).Open(nil, "")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
