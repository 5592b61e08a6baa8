// Command factived serves the trivia agent over HTTP:
//
//	POST /api/answer {"question": "..."}  ->  {"output": "..."}
//	GET  /health
//	GET  /metrics
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/davrell/factive"
	"github.com/davrell/factive/logging"
	"github.com/davrell/factive/wiki"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	client := wiki.New(cfg.WikiBaseURL, log.Named("wiki"))
	agent := factive.New(
		factive.WithSearchProvider(client),
		factive.WithSummaryProvider(client),
		factive.WithLogger(log.Named("agent")),
		factive.WithMaxQueries(cfg.MaxQueries),
		factive.WithSearchLimit(cfg.SearchLimit),
		factive.WithMaxSentences(cfg.MaxSentences),
		factive.WithStepDelay(cfg.StepDelay),
	)

	srv := newServer(log, agent)
	prometheus.MustRegister(srv.questionsTotal, srv.answerSeconds)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)
	r.Post("/api/answer", srv.handleAnswer)
	r.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("answer server starting", zap.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}

// answerer lets tests swap the agent for a stub.
type answerer interface {
	Answer(ctx context.Context, question string) (factive.Result, error)
}

type server struct {
	log   *zap.Logger
	agent answerer

	questionsTotal *prometheus.CounterVec
	answerSeconds  prometheus.Histogram
}

func newServer(log *zap.Logger, agent answerer) *server {
	return &server{
		log:   log,
		agent: agent,
		questionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "factived_questions_total",
			Help: "Questions processed, by outcome.",
		}, []string{"outcome"}),
		answerSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "factived_answer_seconds",
			Help:    "Wall time spent answering one question.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

type answerRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Output string `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	start := time.Now()
	res, err := s.agent.Answer(r.Context(), strings.TrimSpace(req.Question))
	if err != nil {
		s.log.Error("answer", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.answerSeconds.Observe(time.Since(start).Seconds())
	s.questionsTotal.WithLabelValues(outcomeLabel(res.Answer)).Inc()

	writeJSON(w, http.StatusOK, answerResponse{Output: res.Answer})
}

func outcomeLabel(answer string) string {
	switch answer {
	case factive.AnswerNotAvailable:
		return "not_available"
	case factive.AnswerError:
		return "error"
	default:
		return "answered"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
