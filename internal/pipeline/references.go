package pipeline

import (
	"log/slog"

	"lexweave/internal/baseline"
	"lexweave/internal/config"
	"lexweave/internal/exclusion"
	"lexweave/internal/logging"
	"lexweave/internal/qa"
)

// References bundles the optional external inputs a scoring pass consults:
// the prior stable release, the canon exclusion registry, and the homonym
// policy. Any of them may be nil when unconfigured.
type References struct {
	Baseline   *baseline.Index
	Exclusions *exclusion.Registry
	Homonyms   qa.HomonymPolicy
}

// LoadReferences loads every configured reference source before the caller
// mutates anything. Unconfigured sources are skipped; configured but
// unreadable ones fail with ErrInput.
func LoadReferences(cfg *config.Config, logger *slog.Logger) (References, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	var refs References

	if cfg.Baseline.Path == "" {
		logger.Info("no baseline configured, consistency check skipped")
	} else {
		ix, err := baseline.Load(cfg.Baseline.Path, cfg.Baseline.NearMatch)
		if err != nil {
			return References{}, Wrap(ErrInput, "load baseline", err)
		}
		logger.Info("baseline loaded",
			logging.Int("entries", ix.Len()),
			logging.String("path", cfg.Baseline.Path))
		refs.Baseline = ix
	}

	if cfg.Exclusions.Path != "" {
		registry, err := exclusion.Load(cfg.Exclusions.Path, exclusion.Options{
			IgnoreCase:          cfg.Exclusions.IgnoreCase,
			NormalizeDiacritics: cfg.Exclusions.NormalizeDiacritics,
			TreatHyphenAsDash:   cfg.Exclusions.TreatHyphenAsDash,
		})
		if err != nil {
			return References{}, Wrap(ErrInput, "load exclusion registry", err)
		}
		logger.Info("exclusion registry loaded", logging.Int("terms", registry.Len()))
		refs.Exclusions = registry
	}

	if cfg.QA.HomonymPolicyPath != "" {
		policy, err := qa.LoadAllowlist(cfg.QA.HomonymPolicyPath)
		if err != nil {
			return References{}, Wrap(ErrInput, "load homonym policy", err)
		}
		refs.Homonyms = policy
	}

	return refs, nil
}
