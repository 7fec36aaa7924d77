package assemble

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/specsheet/specsheet/internal/scan"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWindow() scan.Window {
	w := scan.DefaultWindow()
	w.MinBlockLen = 0
	return w
}

func TestExtractDocument_Placeholder(t *testing.T) {
	a := New(scan.DefaultWindow(), testLogger())

	recs, next := a.ExtractDocument(Document{FileName: "empty.pdf", Text: "   \n  "}, 7)
	if len(recs) != 1 {
		t.Fatalf("expected 1 placeholder record, got %d", len(recs))
	}
	if next != 8 {
		t.Errorf("next index = %d, want 8", next)
	}

	got := recs[0]
	want := Record{Index: 7, FileName: "empty.pdf", URL: "", Method: "POST", Input: "", ResponseCode: "200", Output: ""}
	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestExtractDocument_EndToEnd(t *testing.T) {
	a := New(testWindow(), testLogger())

	text := `POST /v1/pay {"custId":"123","data":{}} ... {"rspCode":"0","error":null}`
	recs, next := a.ExtractDocument(Document{FileName: "pay.pdf", Text: text}, 1)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if next != 2 {
		t.Errorf("next index = %d, want 2", next)
	}

	rec := recs[0]
	if rec.URL != "/v1/pay" {
		t.Errorf("url = %q, want /v1/pay", rec.URL)
	}
	if rec.Method != "POST" || rec.ResponseCode != "200" {
		t.Errorf("method/code = %q/%q", rec.Method, rec.ResponseCode)
	}

	wantInput := "{\n  \"custId\": \"123\",\n  \"data\": {}\n}"
	if rec.Input != wantInput {
		t.Errorf("input = %q, want %q", rec.Input, wantInput)
	}
	wantOutput := "{\n  \"rspCode\": \"0\",\n  \"error\": null\n}"
	if rec.Output != wantOutput {
		t.Errorf("output = %q, want %q", rec.Output, wantOutput)
	}
}

func TestExtractDocument_EndpointsWithoutBlocks(t *testing.T) {
	a := New(testWindow(), testLogger())

	recs, _ := a.ExtractDocument(Document{FileName: "bare.pdf", Text: "POST /a then POST /b"}, 1)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Input != "" || rec.Output != "" {
			t.Errorf("record %d: expected empty payloads, got %+v", rec.Index, rec)
		}
	}
}

func TestExtractDocument_NoEndpointsYieldsNoRecords(t *testing.T) {
	a := New(testWindow(), testLogger())

	recs, next := a.ExtractDocument(Document{FileName: "prose.pdf", Text: "just prose, no declarations"}, 5)
	if len(recs) != 0 {
		t.Errorf("expected 0 records for endpoint-less document, got %d", len(recs))
	}
	if next != 5 {
		t.Errorf("next index = %d, want 5 (unchanged)", next)
	}
}

func TestRun_GlobalIndexAcrossDocuments(t *testing.T) {
	a := New(testWindow(), testLogger())

	// Passed out of order; Run sorts by file name.
	docs := []Document{
		{FileName: "b.pdf", Text: "POST /b1 and POST /b2"},
		{FileName: "a.pdf", Text: "POST /a1 and POST /a2"},
	}

	recs, next := a.Run(docs, 1)
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(recs))
	}
	if next != 5 {
		t.Errorf("next index = %d, want 5", next)
	}

	wantOrder := []struct {
		index int
		file  string
		url   string
	}{
		{1, "a.pdf", "/a1"},
		{2, "a.pdf", "/a2"},
		{3, "b.pdf", "/b1"},
		{4, "b.pdf", "/b2"},
	}
	for i, want := range wantOrder {
		rec := recs[i]
		if rec.Index != want.index || rec.FileName != want.file || rec.URL != want.url {
			t.Errorf("record %d = {%d %s %s}, want {%d %s %s}",
				i, rec.Index, rec.FileName, rec.URL, want.index, want.file, want.url)
		}
	}
}

func TestRun_MixedPlaceholderAndEndpoints(t *testing.T) {
	a := New(testWindow(), testLogger())

	docs := []Document{
		{FileName: "a.pdf", Text: ""},
		{FileName: "b.pdf", Text: "POST /x"},
	}

	recs, next := a.Run(docs, 1)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if next != 3 {
		t.Errorf("next index = %d, want 3", next)
	}
	if recs[0].FileName != "a.pdf" || recs[0].URL != "" {
		t.Errorf("record 0 should be the placeholder, got %+v", recs[0])
	}
	if recs[1].URL != "/x" {
		t.Errorf("record 1 url = %q, want /x", recs[1].URL)
	}
}

type stubProducer struct {
	texts map[string]string
}

func (s *stubProducer) Text(path string) (string, error) {
	text, ok := s.texts[path]
	if !ok {
		return "", errors.New("unreadable")
	}
	return text, nil
}

func TestLoadDocuments_UnreadableBecomesEmptyText(t *testing.T) {
	producer := &stubProducer{texts: map[string]string{
		"in/good.pdf": "POST /ok",
	}}

	docs := LoadDocuments(producer, []string{"in/good.pdf", "in/bad.pdf"}, testLogger())
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].FileName != "good.pdf" || docs[0].Text != "POST /ok" {
		t.Errorf("doc 0 = %+v", docs[0])
	}
	if docs[1].FileName != "bad.pdf" || docs[1].Text != "" {
		t.Errorf("doc 1 = %+v, want empty text for unreadable file", docs[1])
	}
}
