package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/specsheet/specsheet/internal/api"
	"github.com/specsheet/specsheet/internal/assemble"
	"github.com/specsheet/specsheet/internal/config"
	"github.com/specsheet/specsheet/internal/events"
	"github.com/specsheet/specsheet/internal/pdftext"
	"github.com/specsheet/specsheet/internal/scan"
	"github.com/specsheet/specsheet/internal/sink"
)

const workbookName = "API_upload_.xlsx"

func main() {
	cfg := config.Load()

	inputDir := flag.String("input", cfg.InputDir, "directory containing the spec PDFs")
	outputDir := flag.String("output", cfg.OutputDir, "directory the workbook is written to")
	serve := flag.Bool("serve", false, "run the HTTP extraction API instead of a batch run")
	port := flag.Int("port", cfg.Port, "HTTP port for -serve")
	flag.Parse()

	setupLogging(cfg.LogLevel)

	window := scan.Window{
		Radius:      cfg.WindowRadius,
		MaxBlocks:   cfg.MaxBlocks,
		MinBlockLen: cfg.MinBlockLen,
	}
	assembler := assemble.New(window, slog.Default())

	if *serve {
		srv := api.NewServer(*port, assembler)
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
		return
	}

	runBatch(cfg, assembler, *inputDir, *outputDir)
}

func runBatch(cfg config.Config, assembler *assemble.Assembler, inputDir, outputDir string) {
	ctx := context.Background()
	runID := uuid.New()
	started := time.Now()

	slog.Info("specsheet starting", "run_id", runID.String(), "input", inputDir, "output", outputDir)

	paths, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
	if err != nil {
		slog.Error("failed to list input directory", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		slog.Warn("no PDF files found", "dir", inputDir)
	}

	if err := prepareOutputDir(outputDir); err != nil {
		slog.Error("failed to prepare output directory", "error", err)
		os.Exit(1)
	}

	// NATS is optional; a nil publisher publishes nothing.
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		publisher, err = events.Connect(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	sinks := []sink.Sink{sink.NewXLSX(filepath.Join(outputDir, workbookName), slog.Default())}
	if cfg.DatabaseURL != "" {
		pg, err := sink.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		slog.Info("database connected")
		sinks = append(sinks, pg)
	}

	if err := publisher.Publish(events.SubjectRunStarted, events.RunStarted{
		RunID:     runID.String(),
		Files:     len(paths),
		Timestamp: events.Now(),
	}); err != nil {
		slog.Warn("failed to publish run start", "error", err)
	}

	producer := pdftext.New(slog.Default())
	docs := assemble.LoadDocuments(producer, paths, slog.Default())

	var records []assemble.Record
	idx := 1
	for _, doc := range sortDocs(docs) {
		var recs []assemble.Record
		recs, idx = assembler.ExtractDocument(doc, idx)
		records = append(records, recs...)

		if err := publisher.Publish(events.SubjectDocumentProcessed, events.DocumentProcessed{
			RunID:    runID.String(),
			FileName: doc.FileName,
			Records:  len(recs),
		}); err != nil {
			slog.Warn("failed to publish document event", "error", err)
		}
	}

	for _, s := range sinks {
		if err := s.Write(ctx, runID, records); err != nil {
			slog.Error("sink write failed", "error", err)
			os.Exit(1)
		}
	}

	duration := time.Since(started)
	if err := publisher.Publish(events.SubjectRunCompleted, events.RunCompleted{
		RunID:    runID.String(),
		Records:  len(records),
		Duration: duration.String(),
	}); err != nil {
		slog.Warn("failed to publish run completion", "error", err)
	}

	slog.Info("run complete",
		"run_id", runID.String(),
		"files", len(paths),
		"records", len(records),
		"duration", duration.String(),
	)
}

// sortDocs orders documents by file name so record indices are reproducible.
func sortDocs(docs []assemble.Document) []assemble.Document {
	sorted := make([]assemble.Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FileName < sorted[j].FileName })
	return sorted
}

// prepareOutputDir creates the output directory and clears any previous run's
// files. Removal is best-effort.
func prepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		_ = os.RemoveAll(filepath.Join(dir, entry.Name()))
	}
	return nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
