// Package pdftext produces the linear text stream for a PDF document: the
// selectable text layer, page by page, with the full-width punctuation that
// shows up in the source documents folded to half-width.
package pdftext

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// widthReplacer folds the full-width punctuation variants seen in the source
// documents to their ASCII forms.
var widthReplacer = strings.NewReplacer(
	"：", ":",
	"（", "(",
	"）", ")",
	"．", ".",
	"－", "-",
)

type Reader struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// Text extracts the text layer of the PDF at path. Each page is normalized and
// trimmed; pages are joined with newlines. Pages without a text layer are
// skipped, so an image-only PDF yields empty text.
func (r *Reader) Text(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat pdf: %w", err)
	}

	doc, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			r.logger.Debug("page has no extractable text", "path", path, "page", i)
			continue
		}
		pages = append(pages, normalizePage(text))
	}
	return strings.Join(pages, "\n"), nil
}

func normalizePage(text string) string {
	return strings.TrimSpace(widthReplacer.Replace(text))
}
