package config

// Default values for optional configuration fields.
const (
	DefaultHistoryDSN = "calseq_history.db"
	DefaultRepeats    = 1
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.History.DSN == "" {
		cfg.History.DSN = DefaultHistoryDSN
	}
	if cfg.Run.Repeats == 0 {
		cfg.Run.Repeats = DefaultRepeats
	}
}
