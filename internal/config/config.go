// Package config holds the tunable search and evaluation parameters
// named in the engine's options table, loaded from an optional TOML
// file with in-code defaults when no file (or no matching key) is
// present.
package config

import (
	"log"
	"time"

	"github.com/BurntSushi/toml"
)

// Search holds the iterative-deepening and move-ordering parameters.
type Search struct {
	MaxDepth       int  `toml:"max_depth"`        // upper bound for iterative deepening
	MinDepth       int  `toml:"min_depth"`        // below this depth, the time budget is ignored
	MaxTimeSeconds int  `toml:"max_time"`         // soft wall-clock budget per move, seconds
	NumKillers     int  `toml:"num_killers"`      // killer moves retained per depth
	MVVStoreK      int  `toml:"mvv_store_k"`      // top-K captures promoted by MVV-LVA
	PhaseLimit     int  `toml:"phase_limit"`      // phase threshold below which endgame = 1
	UseOpeningBook bool `toml:"use_opening_book"` // enable external opening-book probing
	UseTablebase   bool `toml:"use_tablebase"`    // enable external tablebase probing
}

// MaxTime returns the configured soft time budget as a duration.
func (s Search) MaxTime() time.Duration {
	return time.Duration(s.MaxTimeSeconds) * time.Second
}

// Config is the top-level configuration record.
type Config struct {
	Search Search
}

// Default matches original_source/settings.py: max_search_time=5,
// min_search_depth=6, mvv_storing=10, no_of_killer_moves=2,
// endgame_phase_limit=14.
func Default() Config {
	return Config{
		Search: Search{
			MaxDepth:       64,
			MinDepth:       6,
			MaxTimeSeconds: 5,
			NumKillers:     2,
			MVVStoreK:      10,
			PhaseLimit:     14,
			UseOpeningBook: true,
			UseTablebase:   true,
		},
	}
}

// Load reads path as TOML over the defaults; a missing or unreadable
// file is not an error, the defaults are kept as-is.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Printf("[config] using defaults (%s): %v", path, err)
	}
	return cfg
}
