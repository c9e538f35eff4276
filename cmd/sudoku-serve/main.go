// Command sudoku-serve exposes the solving engine as a JSON API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/source"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory for fs storage")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	storageKind := flag.String("storage", "fs", "puzzle storage: fs|pocketbase")
	sourceURL := flag.String("source-url", "", "base URL for remote puzzle collections")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Credentials for remote storage live in the environment; a local .env
	// is optional.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file", "err", err)
	}

	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*storageKind)) {
	case "pocketbase":
		pb := storage.NewPocketBase(
			os.Getenv("POCKETBASE_URL"),
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := pb.Authorize(ctx); err != nil {
			cancel()
			logger.Error("pocketbase authorization failed", "err", err)
			os.Exit(1)
		}
		cancel()
		st = pb
	default:
		_ = os.MkdirAll(*persist, 0o755)
		st = storage.NewFS(*persist)
	}

	var src ports.Source
	if *sourceURL != "" {
		src = source.NewHTTP(*sourceURL)
	}

	// Wire engine → use cases → HTTP adapter. Engines hold per-solve
	// state, so the shared solver is the per-call factory.
	eng := solver.Factory{}
	g := generator.NewUniqueGenerator(eng)
	v := validator.New()
	hin := hint.New()
	uc := usecase.NewService(eng, g, v, hin, st, src)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "storage", *storageKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
