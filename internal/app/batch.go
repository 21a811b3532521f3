package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nuetzliches/objname/internal/namecodec"
)

const (
	batchOpEncode = "encode"
	batchOpDecode = "decode"

	maxBatchLineBytes = 1 << 20
)

type batchOptions struct {
	Op    string
	Codec namecodec.Codec
}

type batchStats struct {
	Values int
	Failed int
}

func parseBatchOp(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", batchOpEncode:
		return batchOpEncode, nil
	case batchOpDecode:
		return batchOpDecode, nil
	default:
		return "", fmt.Errorf("invalid --op %q (use: encode|decode)", s)
	}
}

// runBatch converts one value per input line and writes one JSON result per
// line. Values rejected by strict decoding are reported in the result and
// counted, they do not stop the run.
func runBatch(ctx context.Context, opts batchOptions, r io.Reader, w io.Writer, m *codecMetrics) (batchStats, error) {
	ctx, span := tracer().Start(ctx, "batch")
	defer span.End()
	span.SetAttributes(
		attribute.String("objname.op", opts.Op),
		attribute.String("objname.mode", modeLabel(opts.Codec.IgnoreWildcards)),
		attribute.String("objname.policy", opts.Codec.Policy.String()),
	)

	var stats batchStats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxBatchLineBytes)
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return stats, err
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		res := codecResult{Input: line}
		switch opts.Op {
		case batchOpDecode:
			out, err := opts.Codec.Decode(line)
			if err != nil {
				res.Error = err.Error()
				stats.Failed++
				m.observeMalformed()
			} else {
				res.Output = out
			}
		default:
			res.Output = opts.Codec.Encode(line)
		}
		m.observeValue(opts.Op, opts.Codec.IgnoreWildcards)
		stats.Values++
		if err := enc.Encode(res); err != nil {
			span.RecordError(err)
			return stats, fmt.Errorf("write result: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read input")
		return stats, fmt.Errorf("read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("write result: %w", err)
	}
	span.SetAttributes(
		attribute.Int("objname.values", stats.Values),
		attribute.Int("objname.failed", stats.Failed),
	)
	return stats, nil
}

func runBatchCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "file with one value per line (default: stdin)")
	outputPath := fs.String("output", "", "file for JSON line results (default: stdout)")
	opName := fs.String("op", batchOpEncode, "operation: encode|decode")
	wildcards := fs.Bool("wildcards", false, "keep '*' and '?' as query wildcards")
	strict := fs.Bool("strict", false, "reject malformed escapes when decoding")
	watch := fs.Bool("watch", false, "re-run when the input file changes")
	metricsFile := fs.String("metrics-file", "", "write Prometheus text metrics to file after each run")
	tracingEndpoint := fs.String("tracing-endpoint", "", "OTLP/HTTP traces endpoint URL")
	tracingInsecure := fs.Bool("tracing-insecure", false, "disable TLS for the traces endpoint")
	logLevel := fs.String("log-level", "", "log level (debug|info|warn|error)")
	logOutput := fs.String("log-output", "stderr", "log output (stdout|stderr|file)")
	logFile := fs.String("log-file", "", "log file path when --log-output=file")
	dotenvPath := fs.String("dotenv", "", "load environment variables from file (dev only)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "batch: unexpected positional arguments")
		return 2
	}
	op, err := parseBatchOp(*opName)
	if err != nil {
		fmt.Fprintf(stderr, "batch: %v\n", err)
		return 2
	}
	if *watch && strings.TrimSpace(*inputPath) == "" {
		fmt.Fprintln(stderr, "batch: --watch requires --input")
		return 2
	}

	cfg, err := resolveSettings(*dotenvPath, *logLevel, "", *tracingEndpoint, *strict)
	if err != nil {
		fmt.Fprintf(stderr, "batch: %v\n", err)
		return 2
	}
	logger, closer, err := newLogger(logSink{
		Level:  cfg.LogLevel,
		Output: *logOutput,
		Path:   *logFile,
		Stderr: stderr,
		Stdout: stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "batch: %v\n", err)
		return 2
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEndpoint != "" {
		shutdown, err := initTracing(ctx, tracingConfig{
			Endpoint: cfg.TracingEndpoint,
			Insecure: *tracingInsecure,
		}, func(err error) {
			logger.Warn("tracing_export_error", slog.Any("err", err))
		})
		if err != nil {
			logger.Error("tracing_init_failed", slog.Any("err", err))
			return 1
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("tracing_shutdown_failed", slog.Any("err", err))
			}
		}()
	}

	job := &batchJob{
		opts: batchOptions{
			Op:    op,
			Codec: namecodec.Codec{Policy: cfg.Policy, IgnoreWildcards: *wildcards},
		},
		inputPath:   strings.TrimSpace(*inputPath),
		outputPath:  strings.TrimSpace(*outputPath),
		metricsPath: strings.TrimSpace(*metricsFile),
		stdin:       stdin,
		stdout:      stdout,
		metrics:     newCodecMetrics(),
		logger:      logger,
	}

	stats, err := job.run(ctx, "start")
	if err != nil {
		return 1
	}
	if *watch {
		watchFile(ctx, job.inputPath, logger, func() {
			_, _ = job.run(ctx, "watch")
		})
		return 0
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

type batchJob struct {
	opts        batchOptions
	inputPath   string
	outputPath  string
	metricsPath string
	stdin       io.Reader
	stdout      io.Writer
	metrics     *codecMetrics
	logger      *slog.Logger
}

func (j *batchJob) run(ctx context.Context, trigger string) (batchStats, error) {
	logger := j.logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	logger.Info("batch_started",
		slog.String("trigger", trigger),
		slog.String("op", j.opts.Op),
		slog.String("policy", j.opts.Codec.Policy.String()),
		slog.Bool("wildcards", j.opts.Codec.IgnoreWildcards),
	)

	stats, err := j.runOnce(ctx)
	d := time.Since(start)
	j.metrics.observeRun(trigger, d.Seconds())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("batch_canceled", slog.String("trigger", trigger))
		} else {
			logger.Error("batch_failed", slog.String("trigger", trigger), slog.Any("err", err))
		}
		return stats, err
	}
	if err := j.metrics.writeTextfile(j.metricsPath); err != nil {
		logger.Warn("metrics_write_failed", slog.String("path", j.metricsPath), slog.Any("err", err))
	}
	logger.Info("batch_finished",
		slog.String("trigger", trigger),
		slog.Int("values", stats.Values),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", d),
	)
	return stats, nil
}

func (j *batchJob) runOnce(ctx context.Context) (batchStats, error) {
	in := j.stdin
	if j.inputPath != "" {
		f, err := os.Open(j.inputPath)
		if err != nil {
			return batchStats{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		in = os.Stdin
	}

	if j.outputPath == "" {
		out := j.stdout
		if out == nil {
			out = os.Stdout
		}
		return runBatch(ctx, j.opts, in, out, j.metrics)
	}

	f, err := os.OpenFile(j.outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return batchStats{}, fmt.Errorf("open output: %w", err)
	}
	stats, err := runBatch(ctx, j.opts, in, f, j.metrics)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return stats, err
}
