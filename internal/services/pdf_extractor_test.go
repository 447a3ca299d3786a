package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsNonPDFBytes(t *testing.T) {
	svc := NewPDFExtractorService()

	// A .docx renamed to .pdf starts with a zip signature, not %PDF.
	_, err := svc.ExtractText([]byte("PK\x03\x04 not actually a pdf"))
	assert.Error(t, err)
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	svc := NewPDFExtractorService()

	_, err := svc.ExtractText(nil)
	assert.Error(t, err)
}

func TestExtractTextRejectsTruncatedPDF(t *testing.T) {
	svc := NewPDFExtractorService()

	_, err := svc.ExtractText([]byte("%PDF-1.7\n1 0 obj\n<<"))
	assert.Error(t, err)
}
