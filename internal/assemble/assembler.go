package assemble

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specsheet/specsheet/internal/scan"
)

const (
	methodPOST = "POST"
	responseOK = "200"
)

// Record is one output row: an endpoint with its example request and response
// payloads. Method and ResponseCode are fixed; nothing in the source documents
// currently drives them.
type Record struct {
	Index        int    `json:"index"`
	FileName     string `json:"file_name"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	Input        string `json:"input"`
	ResponseCode string `json:"response_code"`
	Output       string `json:"output"`
}

// Document is a source file's name plus its full linear text.
type Document struct {
	FileName string
	Text     string
}

// TextProducer supplies the linear text for a document path. Implementations
// own any layout or character-set normalization; the assembler sees final
// text.
type TextProducer interface {
	Text(path string) (string, error)
}

// Assembler runs discovery, block extraction, classification and
// normalization over documents, assigning the single run-wide record index.
type Assembler struct {
	window scan.Window
	logger *slog.Logger
}

// New creates an assembler scanning with the given window bounds.
func New(window scan.Window, logger *slog.Logger) *Assembler {
	return &Assembler{window: window, logger: logger}
}

// Run processes docs in lexicographic file-name order, numbering records from
// startIndex (1 for a fresh run). It returns the flattened record sequence and
// the next unused index.
func (a *Assembler) Run(docs []Document, startIndex int) ([]Record, int) {
	sorted := make([]Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FileName < sorted[j].FileName })

	records := []Record{}
	idx := startIndex
	for _, doc := range sorted {
		var recs []Record
		recs, idx = a.ExtractDocument(doc, idx)
		records = append(records, recs...)
	}
	return records, idx
}

// ExtractDocument produces the records for a single document, numbering them
// from startIndex, and returns the next unused index. A document with no
// extractable text yields exactly one placeholder record; a document with N
// discovered endpoints yields exactly N records.
func (a *Assembler) ExtractDocument(doc Document, startIndex int) ([]Record, int) {
	idx := startIndex

	if strings.TrimSpace(doc.Text) == "" {
		a.logger.Warn("no extractable text, emitting placeholder", "file", doc.FileName)
		rec := Record{
			Index:        idx,
			FileName:     doc.FileName,
			Method:       methodPOST,
			ResponseCode: responseOK,
		}
		return []Record{rec}, idx + 1
	}

	urls := scan.Endpoints(doc.Text)
	a.logger.Info("endpoints discovered", "file", doc.FileName, "count", len(urls))

	var records []Record
	for _, url := range urls {
		// Anchor on the first literal occurrence of the bare path. When the
		// same path appears under more than one POST declaration this can
		// anchor the window at the wrong one; the behavior is kept as-is.
		var blocks []string
		if pos := strings.Index(doc.Text, url); pos >= 0 {
			blocks = scan.BlocksNear(doc.Text, pos, a.window)
		}

		cls := scan.Classify(blocks)
		input, inputOK := scan.Normalize(cls.Input)
		output, outputOK := scan.Normalize(cls.Output)

		a.logger.Debug("endpoint extracted",
			"file", doc.FileName,
			"url", url,
			"blocks", len(blocks),
			"input_fallback", cls.InputFallback,
			"output_fallback", cls.OutputFallback,
			"input_normalized", inputOK,
			"output_normalized", outputOK,
		)

		records = append(records, Record{
			Index:        idx,
			FileName:     doc.FileName,
			URL:          url,
			Method:       methodPOST,
			Input:        input,
			ResponseCode: responseOK,
			Output:       output,
		})
		idx++
	}
	return records, idx
}

// LoadDocuments reads each path through the producer. A path whose text cannot
// be produced becomes a document with empty text, which downgrades to a
// placeholder record rather than failing the run.
func LoadDocuments(producer TextProducer, paths []string, logger *slog.Logger) []Document {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		text, err := producer.Text(path)
		if err != nil {
			logger.Warn("failed to read document", "path", path, "error", err)
			text = ""
		}
		docs = append(docs, Document{FileName: filepath.Base(path), Text: text})
	}
	return docs
}
