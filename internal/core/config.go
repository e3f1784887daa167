package core

// RuntimeConfig describes the terminal a session is rendered into.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
