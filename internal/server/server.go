// Package server exposes the detector over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/config"
	"github.com/shabbyrobe/gibberish/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	// Strategy is used when a request names neither a strategy nor a
	// sensitivity.
	Strategy gibberish.Strategy
	Weighted config.WeightedConfig
}

type Server struct {
	det     *gibberish.Detector
	metrics *metrics.Metrics
	log     *zap.Logger
	opts    Options
	handler http.Handler
}

func New(det *gibberish.Detector, m *metrics.Metrics, log *zap.Logger, opts Options) *Server {
	if opts.Strategy == nil {
		opts.Strategy = gibberish.Tiered{Sensitivity: gibberish.Medium}
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}

	s := &Server{det: det, metrics: m, log: log, opts: opts}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/classify", s.instrument("/v1/classify", http.HandlerFunc(s.handleClassify)))
	mux.Handle("GET /healthz", s.instrument("/healthz", http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /metrics", m.Handler())
	s.handler = mux
	return s
}

func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then waits up to the
// shutdown timeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ErrorLog:          zap.NewStdLog(s.log.Named("http")),
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

type classifyRequest struct {
	Text        *string `json:"text"`
	Strategy    string  `json:"strategy,omitempty"`
	Sensitivity string  `json:"sensitivity,omitempty"`
}

type classifyResponse struct {
	RequestID string           `json:"request_id"`
	Strategy  string           `json:"strategy"`
	Gibberish bool             `json:"gibberish"`
	Password  bool             `json:"password"`
	Scores    gibberish.Scores `json:"scores"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	rid := requestID(r.Context())

	var req classifyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.writeError(w, rid, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, rid, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Text == nil {
		s.writeError(w, rid, http.StatusBadRequest, `missing "text"`)
		return
	}

	strategy := s.opts.Strategy
	if req.Strategy != "" || req.Sensitivity != "" {
		var err error
		strategy, err = config.StrategyFor(req.Strategy, req.Sensitivity, s.opts.Weighted)
		if err != nil {
			s.writeError(w, rid, http.StatusBadRequest, err.Error())
			return
		}
	}

	start := time.Now()
	sc := s.det.Analyze(*req.Text, strategy)
	resp := classifyResponse{
		RequestID: rid,
		Strategy:  strategy.String(),
		Gibberish: sc.Gibberish,
		Password:  s.det.IsPassword(*req.Text),
		Scores:    sc,
	}
	s.metrics.ObserveClassification(resp.Strategy, resp.Gibberish, resp.Password, time.Since(start))

	s.log.Debug("classify",
		zap.String("request_id", rid),
		zap.String("strategy", resp.Strategy),
		zap.Bool("gibberish", resp.Gibberish),
		zap.String("reason", sc.Reason),
		zap.Int("len", len(*req.Text)))

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, rid string, code int, msg string) {
	s.log.Info("request rejected", zap.String("request_id", rid), zap.Int("status", code), zap.String("error", msg))
	writeJSON(w, code, errorResponse{RequestID: rid, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
