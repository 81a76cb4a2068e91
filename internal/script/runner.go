// Package script runs the external interpreter-driven scripts the
// dashboard triggers for data download, preprocessing, and prediction.
package script

import (
	"bytes"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"tickerlab/internal/config"
)

// Status classifies the result of one script invocation.
type Status int

const (
	// StatusSuccess: the process exited zero. Detail holds trimmed stdout.
	StatusSuccess Status = iota
	// StatusScriptFailure: the process exited non-zero. Detail holds
	// trimmed stderr.
	StatusScriptFailure
	// StatusLaunchFailure: the process could not be started at all
	// (missing interpreter, missing script, permission error). Detail
	// holds the error description.
	StatusLaunchFailure
)

// Outcome is the result of a single script invocation. Call sites must
// format every outcome into a user-visible message; none is dropped.
type Outcome struct {
	Status Status
	Detail string
}

// Runner invokes the configured scripts synchronously: each call blocks
// until the process exits. There is no timeout and no cancellation.
type Runner struct {
	interpreter string
	download    string
	preprocess  string
	predict     string
	logger      *slog.Logger
}

// NewRunner creates a Runner from the scripts configuration.
func NewRunner(cfg config.Scripts, logger *slog.Logger) *Runner {
	return &Runner{
		interpreter: cfg.Interpreter,
		download:    cfg.Download,
		preprocess:  cfg.Preprocess,
		predict:     cfg.Predict,
		logger:      logger,
	}
}

// Download fetches series data for ticker into the cache directory.
func (r *Runner) Download(ticker string) Outcome {
	return r.run(r.download, ticker)
}

// Preprocess prepares the series file at seriesPath for modeling.
func (r *Runner) Preprocess(seriesPath string) Outcome {
	return r.run(r.preprocess, seriesPath)
}

// Predict runs the model; on success the prediction text is the outcome
// detail (the script's stdout).
func (r *Runner) Predict() Outcome {
	return r.run(r.predict)
}

func (r *Runner) run(scriptPath string, args ...string) Outcome {
	argv := append([]string{scriptPath}, args...)
	cmd := exec.Command(r.interpreter, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		r.logger.Info("script ok", "script", scriptPath, "args", args, "elapsed", elapsed)
		return Outcome{Status: StatusSuccess, Detail: strings.TrimSpace(stdout.String())}
	case errors.As(err, &exitErr):
		r.logger.Warn("script failed", "script", scriptPath, "args", args,
			"exit_code", exitErr.ExitCode(), "elapsed", elapsed)
		return Outcome{Status: StatusScriptFailure, Detail: strings.TrimSpace(stderr.String())}
	default:
		r.logger.Error("script launch failed", "script", scriptPath, "args", args, "error", err)
		return Outcome{Status: StatusLaunchFailure, Detail: err.Error()}
	}
}
