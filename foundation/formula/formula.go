// File: formula.go
// Title: Formula Engine
// Description: High-level entry point that combines the formula parser with
//              structured logging, timing and concurrent batch parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package formula

import (
	"context"
	"errors"
	"sync"
	"time"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula/model"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

// DefaultWorkers is the batch parallelism used when Options.Workers is 0
const DefaultWorkers = 4

// Engine coordinates parsing, logging and batch processing
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the formula engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxDepth limits bracket nesting (default: 64)
	MaxDepth int

	// MaxInputLength limits formula length in bytes (default: unlimited)
	MaxInputLength int

	// Workers bounds the goroutines used by ParseAll (default: 4)
	Workers int

	// NewRequestID, if set, generates a request ID for every parse whose
	// context does not carry one
	NewRequestID func() string
}

// Result is the outcome of a successful parse
type Result struct {
	Input     string         `json:"input" yaml:"input"`
	Molecule  model.Molecule `json:"elements" yaml:"elements"`
	Atoms     uint64         `json:"atoms" yaml:"atoms"`
	Duration  time.Duration  `json:"-" yaml:"-"`
	RequestID string         `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// BatchResult pairs an input of ParseAll with its result or error
type BatchResult struct {
	Index  int
	Input  string
	Result *Result
	Err    error
}

type requestIDKey struct{}

// WithRequestID returns a context carrying a request ID that the engine
// attaches to log entries and results
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewEngine creates a new formula engine
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Workers < 0 {
		return nil, mdwerror.New("workers must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("formula.NewEngine").
			WithDetail("workers", opts.Workers)
	}
	if opts.Workers == 0 {
		opts.Workers = DefaultWorkers
	}

	logger := opts.Logger.WithField("component", "formula-engine")

	p, err := mdwparser.New(mdwparser.Options{
		Logger:         opts.Logger,
		MaxDepth:       opts.MaxDepth,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize formula parser").
			WithOperation("formula.NewEngine")
	}

	logger.Debug("Formula engine initialized", mdwlog.Fields{
		"maxDepth":       p.MaxDepth(),
		"maxInputLength": opts.MaxInputLength,
		"workers":        opts.Workers,
	})

	return &Engine{
		parser:  p,
		logger:  logger,
		options: opts,
	}, nil
}

// Parse parses a single formula. Syntax errors are returned as
// *parser.ParseError; a cancelled context yields a CANCELED error.
func (e *Engine) Parse(ctx context.Context, input string) (*Result, error) {
	logger := e.logger
	requestID := RequestIDFromContext(ctx)
	if requestID == "" && e.options.NewRequestID != nil {
		requestID = e.options.NewRequestID()
	}
	if requestID != "" {
		logger = logger.WithRequestID(requestID)
	}

	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "formula parsing canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation("formula.Parse").
			WithRequestID(requestID)
	}

	start := time.Now()
	molecule, err := e.parser.Parse(input)
	duration := time.Since(start)

	if err != nil {
		var pe *mdwparser.ParseError
		if errors.As(err, &pe) {
			logger.LogError(pe.AsError().WithRequestID(requestID), mdwlog.Fields{
				"duration_us": duration.Microseconds(),
			})
		} else {
			logger.WarnWithErr("Formula parsing failed", err)
		}
		return nil, err
	}

	atoms, ok := molecule.Total()
	if !ok {
		err := mdwerror.New("total atom count overflows").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("formula.Parse").
			WithContext(input).
			WithRequestID(requestID)
		logger.LogError(err)
		return nil, err
	}

	logger.Debug("Formula parsed", mdwlog.Fields{
		"input":       input,
		"elements":    len(molecule),
		"atoms":       atoms,
		"duration_us": duration.Microseconds(),
	})

	return &Result{
		Input:     input,
		Molecule:  molecule,
		Atoms:     atoms,
		Duration:  duration,
		RequestID: requestID,
	}, nil
}

// ParseAll parses independent formulas concurrently. The returned slice
// has one entry per input in input order.
func (e *Engine) ParseAll(ctx context.Context, inputs []string) []BatchResult {
	results := make([]BatchResult, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	timer := e.logger.StartTimer("formula.ParseAll").WithField("inputs", len(inputs))

	workers := e.options.Workers
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := e.Parse(ctx, inputs[i])
				results[i] = BatchResult{Index: i, Input: inputs[i], Result: result, Err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	timer.WithField("failed", failed).Stop()

	return results
}

// Tokenize returns the token stream of input for diagnostics
func (e *Engine) Tokenize(input string) ([]mdwparser.Token, error) {
	return mdwparser.Tokenize(input)
}

// Validate reports whether input is a well-formed formula
func (e *Engine) Validate(input string) error {
	_, err := e.parser.Parse(input)
	return err
}
