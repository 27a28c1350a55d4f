// Command autocomplete loads a word list into a trie, prints structural
// diagnostics and then answers prefix queries read from standard input until
// the input ends or the process is interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/config"
	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/dictionary"
	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/prompt"
	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/trie"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("autocomplete", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.String("config", "", "Path to config file")
	fs.String("dict", "", "Path to the word list, one word per line")
	fs.Int("limit", 0, "Print up to this many ranked predictions instead of the first match")
	fs.Bool("dump", false, "Dump the trie structure after loading")
	fs.Bool("normalize", true, "NFC-normalize words and queries")
	fs.Bool("fold-case", false, "Case-fold words and queries")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.Bool("log-pretty", true, "Human-readable log output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: autocomplete [flags] [word-list]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 && !fs.Changed("dict") {
		if err := fs.Set("dict", fs.Arg(0)); err != nil {
			return err
		}
	}

	configPath, err := fs.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(configPath, fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return err
	}

	if _, err := logging.Setup(stderr, cfg.Log.Level, cfg.Log.Pretty); err != nil {
		return err
	}

	opts := dictionary.Options{
		Normalize: cfg.Dictionary.Normalize,
		FoldCase:  cfg.Dictionary.FoldCase,
		TrimSpace: cfg.Dictionary.TrimSpace,
	}

	words := trie.New()
	if _, err := dictionary.LoadFile(cfg.Dictionary.Path, words, opts); err != nil {
		return err
	}

	printStats(stdout, words.Stats())

	dump, err := fs.GetBool("dump")
	if err != nil {
		return err
	}
	if dump {
		if err := words.Dump(stdout); err != nil {
			return fmt.Errorf("failed to dump trie: %w", err)
		}
	}

	log.Info().Int("limit", cfg.Predict.Limit).Msg("Ready for queries")
	err = prompt.Run(ctx, stdin, stdout, words, prompt.Options{
		Limit: cfg.Predict.Limit,
		Clean: opts.Clean,
	})
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("Interrupted")
		return nil
	}
	return err
}

// printStats prints the structural analytics in a readable format
func printStats(w io.Writer, s trie.Stats) {
	fmt.Fprintln(w, "Dictionary:")
	fmt.Fprintf(w, "  Words:             %d\n", s.Words)
	fmt.Fprintf(w, "  Nodes:             %d\n", s.Nodes)
	fmt.Fprintf(w, "  Height:            %d\n", s.Height)
	fmt.Fprintf(w, "  Leaves:            %d\n", s.Leaves)
	fmt.Fprintf(w, "  Maximum branching: %d\n", s.MaximumBranching)
	fmt.Fprintf(w, "  Longest word:      %s\n", s.LongestWord)
}
