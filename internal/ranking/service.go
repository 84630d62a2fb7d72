package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Moora/internal/events"
	"github.com/MikeSquared-Agency/Moora/internal/metrics"
	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

// ErrInvalidRequest marks a request the engine never saw because its envelope
// was malformed.
var ErrInvalidRequest = errors.New("invalid ranking request")

// Request is one ranking run as submitted by a caller. Nil Criteria means
// the configured criteria; a non-nil empty list is a configuration error.
// Empty RunID means a fresh one.
//
// Transport names the entry point (metrics.TransportHTTP and friends) and is
// the only caller detail that reaches metric labels. Source is free-form,
// such as a client id, and appears only in logs and events.
type Request struct {
	RunID        string
	Transport    string
	Source       string
	Criteria     scoring.Criteria
	Alternatives []scoring.Alternative
}

// Report is the ranked score table handed back to callers.
type Report struct {
	RunID       string           `json:"run_id"`
	Criteria    scoring.Criteria `json:"criteria"`
	Results     []scoring.Result `json:"results"`
	Best        scoring.Result   `json:"best"`
	Frontier    []string         `json:"frontier,omitempty"`
	Summary     string           `json:"summary"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// ExplainReport adds the normalized matrix and factor breakdowns.
type ExplainReport struct {
	Report
	Normalized [][]float64         `json:"normalized"`
	Breakdowns []scoring.Breakdown `json:"breakdowns"`
}

// Service runs scoring requests from every transport and reports each run
// through metrics and, when connected, NATS events.
type Service struct {
	engine   *scoring.Engine
	criteria scoring.Criteria
	events   events.Client
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a Service. ev may be nil to run without events.
func NewService(engine *scoring.Engine, criteria scoring.Criteria, ev events.Client, rec *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		engine:   engine,
		criteria: criteria.Clone(),
		events:   ev,
		metrics:  rec,
		logger:   logger,
		now:      time.Now,
	}
}

// Criteria returns a copy of the configured criteria.
func (s *Service) Criteria() scoring.Criteria {
	return s.criteria.Clone()
}

// Rank scores the request and returns its report.
func (s *Service) Rank(ctx context.Context, req Request) (*Report, error) {
	rep, err := s.run(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return &rep.Report, nil
}

// Explain is Rank plus the intermediate values behind every score.
func (s *Service) Explain(ctx context.Context, req Request) (*ExplainReport, error) {
	return s.run(ctx, req, true)
}

func (s *Service) run(ctx context.Context, req Request, explain bool) (*ExplainReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	} else if _, err := uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("%w: run_id %q is not a uuid", ErrInvalidRequest, runID)
	}
	source := req.Source
	if source == "" {
		source = "api"
	}
	transport := req.Transport

	m := s.matrix(req)

	start := time.Now()
	var (
		ex  *scoring.Explanation
		err error
	)
	if explain {
		ex, err = s.engine.Explain(m)
	} else {
		var r *scoring.Ranking
		if r, err = s.engine.Score(m); err == nil {
			ex = &scoring.Explanation{Ranking: *r}
		}
	}
	elapsed := time.Since(start)

	if err != nil {
		kind := scoring.Kind(err)
		s.metrics.ObserveRun(transport, kind, len(m.Alternatives), elapsed)
		s.logger.Info("ranking rejected", "run_id", runID, "transport", transport, "source", source, "kind", kind, "error", err)
		s.publish(events.SubjectRankingRejected(runID), s.rejectedEvent(runID, source, err))
		return nil, err
	}

	s.metrics.ObserveRun(transport, metrics.OutcomeOK, len(m.Alternatives), elapsed)
	rep := &ExplainReport{
		Report: Report{
			RunID:       runID,
			Criteria:    m.Criteria,
			Results:     ex.Results,
			Best:        ex.Best,
			Frontier:    ex.Frontier,
			Summary:     Summarize(ex.Best, len(ex.Results)),
			GeneratedAt: s.now().UTC(),
		},
		Normalized: ex.Normalized,
		Breakdowns: ex.Breakdowns,
	}

	s.logger.Info("ranking completed",
		"run_id", runID,
		"transport", transport,
		"source", source,
		"alternatives", len(rep.Results),
		"best", rep.Best.Name,
		"best_score", rep.Best.Score,
		"duration_us", elapsed.Microseconds(),
	)
	s.publish(events.SubjectRankingCompleted(runID), completedEvent(&rep.Report, source))
	return rep, nil
}

// matrix builds a run-private copy of the request so concurrent runs share
// no mutable state with each other or with the caller. Only nil criteria fall
// back to the configured set; an explicit empty list is passed through and
// fails validation.
func (s *Service) matrix(req Request) scoring.Matrix {
	criteria := req.Criteria.Clone()
	if req.Criteria == nil {
		criteria = s.criteria.Clone()
	}
	alts := make([]scoring.Alternative, len(req.Alternatives))
	for i, a := range req.Alternatives {
		alts[i] = scoring.Alternative{Name: a.Name, Scores: append([]float64(nil), a.Scores...)}
	}
	return scoring.Matrix{Criteria: criteria, Alternatives: alts}
}

func (s *Service) publish(subject string, payload interface{}) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(subject, payload)
	s.metrics.ObservePublish(err)
	if err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// SetupSubscriptions answers ranking requests arriving over NATS. Results go
// out as completed or rejected events keyed by the request's run id.
func (s *Service) SetupSubscriptions() error {
	if s.events == nil {
		return nil
	}
	return s.events.Subscribe(events.SubjectRankingRequest, s.handleRequest)
}

func (s *Service) handleRequest(subject, reply string, data []byte) {
	var evt events.RankingRequestEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		s.logger.Warn("invalid ranking request", "subject", subject, "error", err)
		s.respond(reply, s.rejectedEvent("", "nats", fmt.Errorf("%w: %v", ErrInvalidRequest, err)))
		return
	}
	source := evt.Source
	if source == "" {
		source = "nats"
	}
	// Fixed here rather than in run so a rejection reply carries the id too.
	runID := evt.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	rep, err := s.Rank(context.Background(), Request{
		RunID:        runID,
		Transport:    metrics.TransportNATS,
		Source:       source,
		Criteria:     evt.Criteria,
		Alternatives: evt.Alternatives,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			s.logger.Warn("invalid ranking request", "subject", subject, "error", err)
		}
		s.respond(reply, s.rejectedEvent(runID, source, err))
		return
	}
	s.respond(reply, completedEvent(rep, source))
}

// respond answers a NATS request. Plain publishes have no reply subject.
func (s *Service) respond(reply string, payload interface{}) {
	if reply == "" {
		return
	}
	s.publish(reply, payload)
}

// KindInvalidRequest labels rejections for malformed request envelopes.
const KindInvalidRequest = "invalid_request"

func (s *Service) rejectedEvent(runID, source string, err error) events.RankingRejectedEvent {
	kind := scoring.Kind(err)
	if kind == "" && errors.Is(err, ErrInvalidRequest) {
		kind = KindInvalidRequest
	}
	return events.RankingRejectedEvent{
		RunID:     runID,
		Source:    source,
		Kind:      kind,
		Error:     err.Error(),
		Timestamp: s.now().UTC(),
	}
}

func completedEvent(rep *Report, source string) events.RankingCompletedEvent {
	return events.RankingCompletedEvent{
		RunID:     rep.RunID,
		Source:    source,
		Criteria:  rep.Criteria.IDs(),
		Results:   rep.Results,
		Best:      rep.Best,
		Frontier:  rep.Frontier,
		Summary:   rep.Summary,
		Timestamp: rep.GeneratedAt,
	}
}

// Summarize renders the one-line recommendation shown with a report.
func Summarize(best scoring.Result, total int) string {
	return fmt.Sprintf("The best alternative is %s with the highest score of %.4f among %d alternatives.",
		best.Name, best.Score, total)
}
