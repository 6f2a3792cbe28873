package dialect

import "sync"

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	return New(keywordMappings, builtinMappings, symbolMappings, digitMappings)
})

// Load builds the shipped tables on first use and returns the same result on
// every later call. A non-nil error is always a *ConfigError.
func Load() (*Tables, error) {
	return loadDefault()
}

// Default returns the shipped tables and panics if they fail verification.
// Entry points call Load first so a broken build exits cleanly instead.
func Default() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}
