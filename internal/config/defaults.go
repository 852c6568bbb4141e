package config

const (
	defaultPendingDir        = "~/.local/share/lexweave/tranches/pending"
	defaultMergedDir         = "~/.local/share/lexweave/tranches/merged"
	defaultDeletedDir        = "~/.local/share/lexweave/tranches/deleted"
	defaultOutputDir         = "~/.local/share/lexweave/output"
	defaultLogDir            = "~/.local/share/lexweave/logs"
	defaultManifestPath      = "~/.local/share/lexweave/manifest.db"
	defaultDictionaryVersion = "1.7.0"
	defaultSourceLabel       = "tranche"
	defaultGateThreshold     = 95
	defaultMaxProseExamples  = 10
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config carrying the stock settings for every section.
func Default() Config {
	return Config{
		Paths: Paths{
			PendingDir:   defaultPendingDir,
			MergedDir:    defaultMergedDir,
			DeletedDir:   defaultDeletedDir,
			OutputDir:    defaultOutputDir,
			LogDir:       defaultLogDir,
			ManifestPath: defaultManifestPath,
		},
		Merge: Merge{
			DictionaryVersion: defaultDictionaryVersion,
			SourceLabel:       defaultSourceLabel,
		},
		Baseline: Baseline{
			NearMatch: true,
		},
		QA: QA{
			GateThreshold: defaultGateThreshold,
		},
		Audit: Audit{
			MaxProseExamples: defaultMaxProseExamples,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
