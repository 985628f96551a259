package configs

import "time"

// HTTP defines configuration for the HTTP server. AllowedOrigins lists
// the browser origins permitted by CORS; the campaign UI is served from a
// different origin than the ledger.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port           uint16        `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"http://*,https://*" envSeparator:","`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}
