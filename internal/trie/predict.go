package trie

import "fmt"

// Predict returns the first word under prefix, in pre-order, that is not the
// prefix itself. The choice follows traversal order, not popularity.
func (t *Trie) Predict(prefix string) (string, bool) {
	var (
		guess string
		found bool
	)
	t.Traverse(prefix, func(rec WordRecord) bool {
		if rec.Word == prefix {
			return true
		}
		guess, found = rec.Word, true
		return false
	})
	return guess, found
}

// PredictN returns at most n words under prefix ordered by popularity,
// highest first. Words of equal popularity keep their traversal order. The
// prefix itself is a candidate when it is stored. Every candidate must carry
// a popularity, otherwise ErrUnranked is returned.
func (t *Trie) PredictN(prefix string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	var candidates []WordRecord
	for _, rec := range t.Records(prefix) {
		if !rec.Ranked {
			return nil, fmt.Errorf("%w: %q", ErrUnranked, rec.Word)
		}
		candidates = append(candidates, rec)
	}

	sortByPopularity(candidates)

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	results := make([]string, 0, len(candidates))
	for _, rec := range candidates {
		results = append(results, rec.Word)
	}
	return results, nil
}

// sortByPopularity is a stable insertion sort, descending by popularity.
func sortByPopularity(recs []WordRecord) {
	for i := 1; i < len(recs); i++ {
		cur := recs[i]
		j := i - 1
		for j >= 0 && recs[j].Popularity < cur.Popularity {
			recs[j+1] = recs[j]
			j--
		}
		recs[j+1] = cur
	}
}
