package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
}

// newServeCmd creates the serve command exposing the compiler over HTTP.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the compiler as an HTTP service",
		Long: `Serve starts an HTTP server with two endpoints: POST /render compiles the
request body to SVG, and GET /healthz reports liveness. JSON bodies follow
the pipeline options schema; any other content type is treated as a raw
map description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(logger)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(runner, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("listening", "addr", opts.addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// newRouter builds the HTTP routing table.
func newRouter(runner *pipeline.Runner, logger *charmlog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", handleHealth)
	r.Post("/render", handleRender(runner))

	return r
}

// requestLogger assigns each request a UUID, attaches a scoped logger to
// the request context and logs the outcome.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			reqLogger := logger.With("request_id", id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			ctx := withLogger(r.Context(), reqLogger)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond))
		})
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender compiles the request body. Compile failures map to 422
// with the positioned diagnostic; anything else is a 500.
func handleRender(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := loggerFromContext(r.Context())

		opts, err := decodeRenderRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		opts.Logger = logger

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			if cerr, ok := diagnostic(err); ok {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": cerr.Error()})
				return
			}
			logger.Error("render failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, result.SVG)
	}
}

// decodeRenderRequest reads pipeline options from the request. JSON bodies
// carry the full options schema; other bodies are the raw description.
func decodeRenderRequest(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			return pipeline.Options{}, errors.New("malformed JSON body")
		}
		return opts, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return pipeline.Options{}, errors.New("unreadable body")
	}
	opts.Source = string(body)
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
