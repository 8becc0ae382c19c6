package config

const (
	defaultDataDir              = "~/.local/share/marquee"
	defaultLogDir               = "~/.local/share/marquee/logs"
	defaultLibraryIndex         = "~/.local/share/marquee/library.json"
	defaultOracleBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	defaultOracleModel          = "gemini-2.0-flash"
	defaultOracleTimeoutSeconds = 30
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			LogDir:       defaultLogDir,
			LibraryIndex: defaultLibraryIndex,
		},
		Oracle: Oracle{
			BaseURL:        defaultOracleBaseURL,
			Model:          defaultOracleModel,
			TimeoutSeconds: defaultOracleTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
