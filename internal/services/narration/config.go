package narration

import (
	"net/http"
	"strings"
	"time"
)

// Defaults for the Groq endpoint.
const (
	DefaultBaseURL    = "https://api.groq.com/openai/v1"
	DefaultModel      = "llama3-8b-8192"
	DefaultStyle      = "sportscaster"
	DefaultTimeout    = 20 * time.Second
	DefaultMaxRetries = 1

	systemPrompt = "You are a concise assistant helping with game battle analysis."
	temperature  = 0.6
	maxTokens    = 512
)

// Config configures the narration client.
type Config struct {
	APIKey     string        `env:"GROQ_API_KEY"`
	Model      string        `env:"GROQ_MODEL" envDefault:"llama3-8b-8192"`
	BaseURL    string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Timeout    time.Duration `env:"NARRATION_TIMEOUT" envDefault:"20s"`
	MaxRetries int           `env:"NARRATION_MAX_RETRIES" envDefault:"1"`
	HTTPClient *http.Client  `env:"-"`
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	return c
}
