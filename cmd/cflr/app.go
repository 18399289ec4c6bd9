// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/cflr/config"
)

// app holds the state shared by every command of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	trace      bool

	cfg      config.Config
	log      *slog.Logger
	runID    string
	shutdown func(context.Context) error

	// running is closed when the solver goroutine of the last solve returns.
	running chan struct{}
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cflr",
		Short:         "All-pairs CFL-reachability over labeled graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&a.trace, "trace", false, "Print OpenTelemetry spans and metrics to stderr")
	cmd.AddCommand(a.solveCmd(), a.checkCmd(), a.genCmd())

	return cmd
}

// setup loads the configuration, builds the logger and installs tracing.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = cfg.NewLogger(a.stderr).With("run_id", a.runID)
	if a.trace {
		return a.initTracing(ctx)
	}

	return nil
}

// initTracing installs stdout exporters for spans and metrics. Metrics are
// flushed once, on shutdown.
func (a *app) initTracing(_ context.Context) error {
	spans, err := stdouttrace.New(stdouttrace.WithWriter(a.stderr), stdouttrace.WithPrettyPrint())
	if err != nil {
		return err
	}
	metrics, err := stdoutmetric.New(stdoutmetric.WithWriter(a.stderr), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return err
	}
	res := resource.NewWithAttributes("",
		attribute.String("service.name", "cflr"),
		attribute.String("cflr.run_id", a.runID),
	)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans), sdktrace.WithResource(res))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics)),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	a.shutdown = func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	return nil
}

// close flushes telemetry. Safe to call when setup never ran.
func (a *app) close(ctx context.Context) {
	if a.shutdown == nil {
		return
	}
	if err := a.shutdown(ctx); err != nil && a.log != nil {
		a.log.Warn("telemetry shutdown failed", "error", err)
	}
	a.shutdown = nil
}
