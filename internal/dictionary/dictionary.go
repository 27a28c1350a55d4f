// Package dictionary loads word lists into a trie. Each line is one word and
// is ranked by its position: line 1 gets popularity -1, line 2 gets -2, and
// so on, so ranked predictions favour words listed earlier.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxLineSize = 1024 * 1024

// Store is the part of the trie the loader needs.
type Store interface {
	InsertWithPopularity(word string, popularity int) error
	Contains(word string) bool
}

// Options controls how lines are turned into words.
type Options struct {
	Normalize bool // NFC-normalize every word
	FoldCase  bool // case-fold every word
	TrimSpace bool // strip leading and trailing white space
}

// Clean applies the options to a single line or query.
func (o Options) Clean(word string) string {
	if o.TrimSpace {
		word = strings.TrimSpace(word)
	}
	if o.Normalize {
		word = norm.NFC.String(word)
	}
	if o.FoldCase {
		word = cases.Fold().String(word)
	}
	return word
}

// Stats summarizes a load.
type Stats struct {
	Lines      int
	Inserted   int
	Skipped    int
	Duplicates int
}

// LoadFile opens path and loads it into s.
func LoadFile(path string, s Store, opts Options) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	log.Debug().Str("path", path).Msg("Loading dictionary")
	stats, err := Load(f, s, opts)
	if err != nil {
		return stats, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}
	return stats, nil
}

// Load reads r line by line and inserts every word into s. A UTF-8 or UTF-16
// byte order mark selects the input encoding; without one UTF-8 is assumed.
// Blank lines are skipped but still consume a rank.
func Load(r io.Reader, s Store, opts Options) (Stats, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var stats Stats
	for scanner.Scan() {
		stats.Lines++
		popularity := -stats.Lines

		word := opts.Clean(scanner.Text())
		if word == "" {
			stats.Skipped++
			continue
		}
		if s.Contains(word) {
			log.Debug().Str("word", word).Int("line", stats.Lines).Msg("Duplicate word, keeping first rank")
			stats.Duplicates++
			continue
		}
		if err := s.InsertWithPopularity(word, popularity); err != nil {
			return stats, fmt.Errorf("failed to insert line %d: %w", stats.Lines, err)
		}
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read line %d: %w", stats.Lines+1, err)
	}

	log.Info().
		Int("lines", stats.Lines).
		Int("inserted", stats.Inserted).
		Int("skipped", stats.Skipped).
		Int("duplicates", stats.Duplicates).
		Msg("Dictionary loaded")
	return stats, nil
}
