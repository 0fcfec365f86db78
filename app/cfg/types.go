package cfg

type Cfg struct {
	// Database configuration
	DatabaseURL string

	// Application configuration
	Port           string
	AllowedOrigins []string

	// External services
	OpenAIAPIKey  string
	TokenSecret   string
	PostHogAPIKey string
	PostHogHost   string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
