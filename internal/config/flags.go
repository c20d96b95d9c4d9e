package config

import "flag"

// ParseFlags parses all configuration flags. Positional arguments (the
// sequence files to load) are left in flag.Args for the caller.
//
// Flags:
//
//	-d history database path (SQLite file)
//	-no-history disable history recording
//	-n number of times to visit the set of sequence files
//	-lampsoff append lamp power-off steps to the rendered program
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var historyDSN string
	var noHistory bool
	var repeats int
	var lampsOff bool
	var jsonConfigPath string

	flag.StringVar(&historyDSN, "d", "", "History database path")
	flag.BoolVar(&noHistory, "no-history", false, "Disable history recording")
	flag.IntVar(&repeats, "n", 0, "Number of times to visit the sequence files")
	flag.BoolVar(&lampsOff, "lampsoff", false, "Append lamp power-off steps")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		History: History{
			DSN:      historyDSN,
			Disabled: noHistory,
		},
		Run: Run{
			Repeats:  repeats,
			LampsOff: lampsOff,
		},
		JSONFilePath: jsonConfigPath,
	}
}
