package merge

import (
	"errors"
	"log/slog"
	"time"

	"lexweave/internal/libran"
	"lexweave/internal/logging"
	"lexweave/internal/tranche"
)

// ErrNoValidFragments is returned when every discovered fragment failed to
// parse or the pending area was empty. The pipeline aborts before any
// relocation in that case.
var ErrNoValidFragments = errors.New("no valid tranche fragments to merge")

// Options configures a merge pass.
type Options struct {
	// Version is stamped on the resulting artifact metadata.
	Version string
	Logger  *slog.Logger
	// Now overrides the metadata timestamp source. Nil means time.Now.
	Now func() time.Time
}

// Result carries the merged snapshot plus the bookkeeping the pipeline needs
// for relocation and reporting.
type Result struct {
	Dictionary *libran.UnifiedDictionary
	// Consumed lists the fragments that contributed entries, in merge order.
	// Only these are relocated out of the pending area.
	Consumed []*tranche.Tranche
	// SkippedFiles names fragments that could not be parsed.
	SkippedFiles []string
	// DroppedEntries counts records discarded for missing English headwords
	// across all consumed fragments.
	DroppedEntries int
}

// Merge normalizes every fragment into the canonical entry list and
// deduplicates by folded English key. The first occurrence of a key wins;
// later occurrences are counted, not resolved, since judging which spelling
// is right belongs to QA. Unparsable fragments are skipped with a warning.
func Merge(files []tranche.File, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "merge")
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	result := &Result{}
	seen := make(map[string]struct{})
	var entries []libran.Entry
	var sources []string
	duplicates := 0

	for _, file := range files {
		t, err := tranche.Load(file.Path, file.Name)
		if err != nil {
			logger.Warn("skipping unparsable fragment",
				logging.String(logging.FieldTranche, file.Name),
				logging.Error(err))
			result.SkippedFiles = append(result.SkippedFiles, file.Name)
			continue
		}
		if t.Dropped > 0 {
			logger.Warn("fragment records dropped for missing headwords",
				logging.String(logging.FieldTranche, file.Name),
				logging.Int("dropped", t.Dropped))
			result.DroppedEntries += t.Dropped
		}

		for _, entry := range t.Entries {
			key := entry.Key()
			if _, exists := seen[key]; exists {
				duplicates++
				continue
			}
			seen[key] = struct{}{}
			entries = append(entries, entry)
		}

		result.Consumed = append(result.Consumed, t)
		sources = append(sources, t.Name)
		logger.Info("merged fragment",
			logging.String(logging.FieldTranche, t.Name),
			logging.Int("entries", len(t.Entries)))
	}

	if len(result.Consumed) == 0 {
		return nil, ErrNoValidFragments
	}

	result.Dictionary = &libran.UnifiedDictionary{
		Metadata: libran.Metadata{
			Version:           opts.Version,
			GeneratedAt:       now().UTC(),
			Sources:           sources,
			TotalEntries:      len(entries),
			DuplicatesRemoved: duplicates,
		},
		Entries: entries,
	}

	logger.Info("merge complete",
		logging.Int("fragments", len(result.Consumed)),
		logging.Int("entries", len(entries)),
		logging.Int("duplicates_removed", duplicates),
		logging.Int("fragments_skipped", len(result.SkippedFiles)))

	return result, nil
}
