// SPDX-License-Identifier: MIT

package allpairs

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("cflr.allpairs")
	meter  = otel.Meter("cflr.allpairs")
)

var (
	solveLatency metric.Float64Histogram
	answerSize   metric.Int64Histogram
	roundsTotal  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"cflr_solve_duration_seconds",
			metric.WithDescription("Duration of all-pairs CFL-reachability solves"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		answerSize, err = meter.Int64Histogram(
			"cflr_answer_nvals",
			metric.WithDescription("Number of vertex pairs in the start nonterminal relation"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		roundsTotal, err = meter.Int64Counter(
			"cflr_rounds_total",
			metric.WithDescription("Total number of fixpoint rounds"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordSolveMetrics records one finished solve.
func recordSolveMetrics(ctx context.Context, algo string, duration time.Duration, rounds, nvals int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algo", algo),
		attribute.Bool("success", success),
	)
	solveLatency.Record(ctx, duration.Seconds(), attrs)
	roundsTotal.Add(ctx, int64(rounds), attrs)
	if success {
		answerSize.Record(ctx, int64(nvals), metric.WithAttributes(attribute.String("algo", algo)))
	}
}

// startSolveSpan creates the span of one solve.
func startSolveSpan(ctx context.Context, algo string, vertices, blocks int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "allpairs.Solve",
		trace.WithAttributes(
			attribute.String("cflr.algo", algo),
			attribute.Int("cflr.vertex_count", vertices),
			attribute.Int("cflr.block_count", blocks),
		),
	)
}

// setSolveSpanResult sets the result attributes on a solve span.
func setSolveSpanResult(span trace.Span, rounds, nvals int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("cflr.rounds", rounds),
		attribute.Int("cflr.answer_nvals", nvals),
	)
}
