package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

const (
	maxPDFSize    = 10 * 1024 * 1024
	minTextLength = 100
)

var (
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	pageOfMarkers  = regexp.MustCompile(`(?i)Page \d+ of \d+`)
	barePageMarker = regexp.MustCompile(`\d+/\d+`)
)

// PDFExtractor extracts plain text and metadata from PDF buffers using MuPDF
// (go-fitz). Parser internals are never surfaced to callers; failures collapse
// to classified, client-safe messages.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) domain.PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// ExtractText walks every page of the PDF, concatenates the visible text,
// normalizes whitespace and pagination artifacts, and enforces a minimum
// extracted length below which the PDF is treated as image-only or corrupt.
func (e *PDFExtractor) ExtractText(buffer []byte) (string, error) {
	if len(buffer) > maxPDFSize {
		return "", apperrors.NewProcessingError(
			fmt.Sprintf("PDF file too large (%dMB). Maximum size is %dMB.", len(buffer)/1024/1024, maxPDFSize/1024/1024),
			nil,
		)
	}

	doc, err := fitz.NewFromMemory(buffer)
	if err != nil {
		e.logger.Error("Failed to open PDF", err, "size", len(buffer))
		return "", apperrors.NewProcessingError(
			"Invalid PDF file. The file might be corrupted or password-protected.",
			err,
		)
	}
	defer doc.Close()

	var pages []string
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	text := cleanExtractedText(strings.Join(pages, "\n\n"))
	if text == "" {
		return "", apperrors.NewProcessingError(
			"No text found in PDF. This might be an image-only PDF or corrupted file.",
			nil,
		)
	}
	if n := utf8.RuneCountInString(text); n < minTextLength {
		return "", apperrors.NewProcessingError(
			fmt.Sprintf("PDF contains very little text (%d characters). Minimum expected is %d. This might be an image-only PDF.", n, minTextLength),
			nil,
		)
	}

	return text, nil
}

// GetMetadata reads page count, title and author. Metadata is advisory: if
// the document fails to load, a zero-page default is returned rather than an
// error. Repeated calls on the same buffer yield identical values.
func (e *PDFExtractor) GetMetadata(buffer []byte) (domain.PDFMetadata, error) {
	doc, err := fitz.NewFromMemory(buffer)
	if err != nil {
		e.logger.Warn("Failed to load PDF for metadata; using defaults", "error", err)
		return domain.PDFMetadata{}, nil
	}
	defer doc.Close()

	meta := doc.Metadata()
	return domain.PDFMetadata{
		Pages:  doc.NumPage(),
		Title:  cleanMetaValue(meta["title"]),
		Author: cleanMetaValue(meta["author"]),
	}, nil
}

// cleanMetaValue trims a metadata string coming out of MuPDF. Values arrive
// as fixed-width C buffers, so everything from the first NUL on is padding.
func cleanMetaValue(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// cleanExtractedText normalizes whitespace and strips common pagination
// artifacts: runs of spaces/tabs collapse to one space, 3+ consecutive
// newlines collapse to exactly 2, "Page X of Y" and bare "N/M" markers are
// removed.
func cleanExtractedText(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = pageOfMarkers.ReplaceAllString(text, "")
	text = barePageMarker.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
