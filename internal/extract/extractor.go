// Package extract converts uploaded medical documents into plain text.
// PDFs are rendered page by page to images and OCRed, image uploads are
// OCRed directly, and .txt files are decoded as UTF-8.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/otiai10/gosseract/v2"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat marks an upload with an extension the extractor does
// not handle. Request-scoped: the caller rejects the upload, nothing else is
// affected.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrExtraction marks an OCR or decode failure on a supported format.
var ErrExtraction = errors.New("text extraction failed")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

type Extractor struct {
	languages string
	logger    *zap.Logger
}

// New creates an extractor. languages is the tesseract language spec, e.g.
// "eng" or "eng+hin".
func New(languages string, logger *zap.Logger) *Extractor {
	if languages == "" {
		languages = "eng"
	}
	return &Extractor{languages: languages, logger: logger}
}

// Extract returns the UTF-8 text of the uploaded file. The format is chosen
// by file extension; anything but PDF, the known image formats and .txt
// fails with ErrUnsupportedFormat.
func (e *Extractor) Extract(ctx context.Context, fileName string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch {
	case ext == ".pdf":
		return e.extractPDF(ctx, content)
	case imageExtensions[ext]:
		return e.ocr(content)
	case ext == ".txt":
		if !utf8.Valid(content) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrExtraction, fileName)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

// extractPDF rasterizes every page and concatenates the per-page OCR texts
// with newline separators. OCR on a large document is slow, so the context is
// checked between pages.
func (e *Extractor) extractPDF(ctx context.Context, content []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read PDF: %v", ErrExtraction, err)
	}

	if encrypted, err := reader.IsEncrypted(); err != nil {
		return "", fmt.Errorf("%w: failed checking PDF encryption: %v", ErrExtraction, err)
	} else if encrypted {
		ok, err := reader.Decrypt([]byte(""))
		if err != nil || !ok {
			return "", fmt.Errorf("%w: PDF is password protected", ErrExtraction)
		}
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("%w: failed to get page count: %v", ErrExtraction, err)
	}

	device := render.NewImageDevice()
	var pages []string

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		page, err := reader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("%w: failed to load page %d: %v", ErrExtraction, i, err)
		}
		img, err := device.Render(page)
		if err != nil {
			return "", fmt.Errorf("%w: failed to render page %d: %v", ErrExtraction, i, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("%w: failed to encode page %d: %v", ErrExtraction, i, err)
		}

		text, err := e.ocr(buf.Bytes())
		if err != nil {
			return "", err
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// ocr runs tesseract over one image. A fresh client per call: gosseract
// clients are not safe for concurrent use.
func (e *Extractor) ocr(imageBytes []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(e.languages, "+")...); err != nil {
		return "", fmt.Errorf("%w: failed to set OCR language: %v", ErrExtraction, err)
	}
	if err := client.SetImageFromBytes(imageBytes); err != nil {
		return "", fmt.Errorf("%w: failed to load image: %v", ErrExtraction, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: OCR failed: %v", ErrExtraction, err)
	}
	return text, nil
}
