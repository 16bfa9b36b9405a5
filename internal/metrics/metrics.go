// Package metrics instruments hashing runs with Prometheus collectors.
// There is no exposition endpoint; the CLI gathers the registry and prints
// the text format on demand.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Recorder owns one run's collectors. A nil *Recorder is valid and records
// nothing, so callers can disable instrumentation without branching.
type Recorder struct {
	registry *prometheus.Registry

	filesHashed  prometheus.Counter
	bytesHashed  prometheus.Counter
	filesSkipped *prometheus.CounterVec
	hashDuration prometheus.Histogram
	ledgerWrites *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		filesHashed: factory.NewCounter(prometheus.CounterOpts{
			Name: "filemon_files_hashed_total",
			Help: "Total files successfully hashed.",
		}),
		bytesHashed: factory.NewCounter(prometheus.CounterOpts{
			Name: "filemon_bytes_hashed_total",
			Help: "Total bytes fed through hash states.",
		}),
		filesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "filemon_files_skipped_total",
			Help: "Files excluded from a directory digest, by reason.",
		}, []string{"reason"}),
		hashDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "filemon_file_hash_duration_seconds",
			Help:    "Per-file hashing duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		ledgerWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "filemon_ledger_writes_total",
			Help: "Ledger record attempts by success status.",
		}, []string{"status"}),
	}
}

// FileHashed records one successfully hashed file.
func (r *Recorder) FileHashed(bytes int64, d time.Duration) {
	if r == nil {
		return
	}
	r.filesHashed.Inc()
	r.bytesHashed.Add(float64(bytes))
	r.hashDuration.Observe(d.Seconds())
}

// FileSkipped records a file excluded from a directory digest.
// reason is "read" or "traversal".
func (r *Recorder) FileSkipped(reason string) {
	if r == nil {
		return
	}
	r.filesSkipped.WithLabelValues(reason).Inc()
}

// LedgerWrite records a ledger persist attempt.
func (r *Recorder) LedgerWrite(ok bool) {
	if r == nil {
		return
	}
	if ok {
		r.ledgerWrites.WithLabelValues("success").Inc()
	} else {
		r.ledgerWrites.WithLabelValues("failure").Inc()
	}
}

// Dump writes all gathered metrics to w in the Prometheus text format.
func (r *Recorder) Dump(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
