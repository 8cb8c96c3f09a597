package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("ERROR"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestNewLogger(t *testing.T) {
	t.Run("honors the configured level", func(t *testing.T) {
		log := NewLogger(LoggingConfig{Level: "warn", Format: "json"})
		assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	})

	t.Run("defaults apply", func(t *testing.T) {
		log := NewLogger(DefaultLoggingConfig())
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})
}

func TestNewMetrics(t *testing.T) {
	t.Run("registers all query metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg)

		m.QueriesTotal.WithLabelValues("evaluate").Inc()
		m.QueriesFailed.WithLabelValues("evaluate", "decode").Inc()
		m.QueryDuration.WithLabelValues("evaluate").Observe(0.25)
		m.DecodeFailures.WithLabelValues("Paper").Inc()

		assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("evaluate")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesFailed.WithLabelValues("evaluate", "decode")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.DecodeFailures.WithLabelValues("Paper")))

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		assert.Contains(t, names, "maka_queries_total")
		assert.Contains(t, names, "maka_queries_failed_total")
		assert.Contains(t, names, "maka_query_duration_seconds")
		assert.Contains(t, names, "maka_decode_failures_total")
	})
}
