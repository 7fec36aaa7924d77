package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/specsheet/specsheet/internal/assemble"
)

type Server struct {
	router    *chi.Mux
	port      int
	assembler *assemble.Assembler
}

func NewServer(port int, assembler *assemble.Assembler) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		assembler: assembler,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/specsheet/status", s.status)
	router.Post("/api/v1/specsheet/extract", s.extract)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"service": "specsheet",
		"status":  "ready",
	})
}

type extractRequest struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

type extractResponse struct {
	Records []assemble.Record `json:"records"`
}

// extract runs the extraction pipeline over a single document supplied as
// already-linearized text. Record indices start at 1 for each request.
func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.FileName == "" {
		http.Error(w, "file_name is required", http.StatusBadRequest)
		return
	}

	doc := assemble.Document{FileName: req.FileName, Text: req.Text}
	records, _ := s.assembler.ExtractDocument(doc, 1)
	if records == nil {
		records = []assemble.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(extractResponse{Records: records})
}
