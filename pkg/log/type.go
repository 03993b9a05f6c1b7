package log

const (
	// ModeDevelopment enables development-friendly output.
	ModeDevelopment = "development"
	// ModeProduction enables structured production output.
	ModeProduction = "production"

	// EncodingJSON emits JSON log lines.
	EncodingJSON = "json"
	// EncodingConsole emits human-readable log lines.
	EncodingConsole = "console"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}
