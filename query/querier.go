package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scholartools/maka/academic"
	"github.com/scholartools/maka/internal/observability"
	"github.com/scholartools/maka/transport"
)

// QuerierConfig contains configuration options for the Querier.
type QuerierConfig struct {
	// BaseURL is the API endpoint root. Defaults to DefaultBaseURL.
	BaseURL string

	// Logger receives structured request/response logs. Defaults to a
	// disabled logger.
	Logger zerolog.Logger

	// Metrics records query counters and durations. Nil disables metric
	// recording.
	Metrics *observability.Metrics
}

// Querier submits queries through a transport and decodes the result
// envelopes into academic entities. It is safe for concurrent use.
type Querier struct {
	sender  transport.Sender
	baseURL string
	logger  zerolog.Logger
	metrics *observability.Metrics
}

// NewQuerier creates a querier bound to the given sender.
func NewQuerier(cfg QuerierConfig, sender transport.Sender) *Querier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Querier{
		sender:  sender,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Post validates and sends a query and decodes its response. Responses with
// a non-2xx status surface as a *transport.StatusError without reaching the
// decoder; decode failures surface as a *academic.DecodeError.
func (q *Querier) Post(ctx context.Context, qry Query) (*academic.Result, error) {
	kind := qry.Kind()

	body, err := qry.Body()
	if err != nil {
		return nil, err
	}

	log := observability.WithQueryContext(q.logger, kind.String(), uuid.NewString())
	endpoint := qry.URL(q.baseURL)
	start := time.Now()

	q.countQuery(kind)
	log.Debug().Str("url", endpoint).Str("body", body.Encode()).Msg("sending query")

	resp, err := q.sender.Send(ctx, endpoint, body, nil)
	if err != nil {
		q.countFailure(kind, "send")
		return nil, fmt.Errorf("sending %s query: %w", kind, err)
	}
	if resp.StatusCode >= 300 {
		q.countFailure(kind, "status")
		log.Debug().Int("status", resp.StatusCode).Msg("query failed")
		return nil, &transport.StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(resp.Body)).Msg("received response")

	result, err := academic.DecodeResponse(kind, []byte(resp.Body))
	if err != nil {
		q.countFailure(kind, "decode")
		q.countDecodeFailure(err)
		return nil, err
	}

	q.observeDuration(kind, time.Since(start))
	return result, nil
}

func (q *Querier) countQuery(kind academic.QueryKind) {
	if q.metrics != nil {
		q.metrics.QueriesTotal.WithLabelValues(kind.String()).Inc()
	}
}

func (q *Querier) countFailure(kind academic.QueryKind, stage string) {
	if q.metrics != nil {
		q.metrics.QueriesFailed.WithLabelValues(kind.String(), stage).Inc()
	}
}

func (q *Querier) countDecodeFailure(err error) {
	if q.metrics == nil {
		return
	}
	var decodeErr *academic.DecodeError
	if errors.As(err, &decodeErr) {
		q.metrics.DecodeFailures.WithLabelValues(decodeErr.Entity).Inc()
	}
}

func (q *Querier) observeDuration(kind academic.QueryKind, d time.Duration) {
	if q.metrics != nil {
		q.metrics.QueryDuration.WithLabelValues(kind.String()).Observe(d.Seconds())
	}
}
