// Package metrics records job submission and file generation counters for
// export through the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "mdbatch"
)

// Failure reasons used as the reason label on SubmitFailuresTotal.
const (
	ReasonScriptNotFound = "script_not_found"
	ReasonExitStatus     = "exit_status"
	ReasonNoJobID        = "no_job_id"
	ReasonInterrupted    = "interrupted"
	ReasonExec           = "exec"
)

// Registry holds every mdbatch metric. It is separate from the default
// registry so textfile output carries no Go runtime series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Submission metrics track sbatch invocations.
var (
	// JobsSubmittedTotal is the total number of jobs accepted by the scheduler.
	JobsSubmittedTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_submitted_total",
		Help:      "Total number of jobs accepted by the scheduler",
	})

	// SubmitFailuresTotal is the total number of failed submissions by reason.
	SubmitFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submit_failures_total",
		Help:      "Total number of failed job submissions",
	}, []string{"reason"})

	// SubmitDuration is a histogram of submission command duration in seconds.
	SubmitDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submit_duration_seconds",
		Help:      "Duration of job submission commands in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
	})
)

// Generation metrics track written job files.
var (
	// FilesGeneratedTotal is the total number of files written by kind.
	FilesGeneratedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_generated_total",
		Help:      "Total number of generated job files",
	}, []string{"kind"})

	// LastRunTimestamp is the unix time of the last recorded activity.
	LastRunTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last mdbatch activity",
	})
)

// RecordSubmission records one submission attempt. An empty reason means success.
func RecordSubmission(duration time.Duration, reason string) {
	LastRunTimestamp.SetToCurrentTime()
	if reason == ReasonScriptNotFound {
		// No command ran.
		SubmitFailuresTotal.WithLabelValues(reason).Inc()
		return
	}

	SubmitDuration.Observe(duration.Seconds())
	if reason != "" {
		SubmitFailuresTotal.WithLabelValues(reason).Inc()
		return
	}
	JobsSubmittedTotal.Inc()
}

// RecordFileGenerated records a written file of the given kind.
func RecordFileGenerated(kind string) {
	LastRunTimestamp.SetToCurrentTime()
	FilesGeneratedTotal.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The write is atomic so a scraping node_exporter never sees a partial file.
func WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory; %w", err)
	}

	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile; %w", err)
	}
	return nil
}
