// Package config loads the presentation settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wrapped/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing, empty or zero, use defaults
//
// Negative numbers are rejected.
//
// # TOML Format
//
//	deck = "~/talks/2025.toml"      # empty: built-in deck; "#N" suffix allowed
//	theme = "Nightfox"              # overrides the saved preference
//	autoplay = false                # start playing once the screen is sized
//	frame_rate = 60                 # scroll animation frames per second
//	progress_interval_ms = 50       # progress bar sampling
//	fast_transition_ms = 400        # interrupting moves and number hotkeys
//	normal_transition_ms = 800      # everything else
//	default_slide_ms = 4000         # slides without a duration
//	swipe_threshold_px = 50         # minimum vertical drag for a swipe
//	cell_width_px = 8               # terminal cell size used to turn
//	cell_height_px = 16             #   mouse drags into pixel gestures
//	state_dir = "~/.local/state/wrapped"
//	log_file = ""                   # empty: logging disabled
//
// # Path Expansion
//
//   - Absolute paths: Used as-is
//   - Tilde paths: Expanded to home directory
//   - Relative paths: Converted to absolute based on current directory
package config
