package constants

const (
	AppName = "bittrex"

	// EnvPrefix namespaces every environment variable the CLI reads (e.g. BITTREX_API_KEY).
	EnvPrefix = "BITTREX"

	DefaultConfigName = "bittrex"
	DotEnvFile        = ".env"
)
