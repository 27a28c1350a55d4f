// Package prompt runs the interactive prediction loop: one prefix per input
// line, one answer per output line.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// Predictor answers prefix queries.
type Predictor interface {
	Predict(prefix string) (string, bool)
	PredictN(prefix string, n int) ([]string, error)
}

// Options configures the loop.
type Options struct {
	// Limit > 0 prints up to Limit ranked words instead of the single guess
	Limit int
	// Prompt is written before each read when not empty
	Prompt string
	// Clean rewrites each query before lookup
	Clean func(string) string
}

// Run answers queries read from in until in is exhausted or ctx is done. It
// returns nil at end of input and ctx.Err() on cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, p Predictor, opts Options) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		if opts.Prompt != "" {
			if _, err := io.WriteString(out, opts.Prompt); err != nil {
				return fmt.Errorf("failed to write prompt: %w", err)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("failed to read query: %w", err)
				}
				return nil
			}
			if opts.Clean != nil {
				line = opts.Clean(line)
			}
			if _, err := fmt.Fprintln(out, answer(p, line, opts.Limit)); err != nil {
				return fmt.Errorf("failed to write answer: %w", err)
			}
		}
	}
}

// answer renders the prediction for one query. Ranked lookups that hit an
// unranked word fall back to the single guess.
func answer(p Predictor, prefix string, limit int) string {
	if limit > 0 {
		words, err := p.PredictN(prefix, limit)
		if err == nil {
			return strings.Join(words, ", ")
		}
		log.Warn().Err(err).Str("prefix", prefix).Msg("Ranked prediction failed, falling back to first match")
	}

	guess, ok := p.Predict(prefix)
	if !ok {
		log.Debug().Str("prefix", prefix).Msg("No prediction")
		return ""
	}
	return guess
}
