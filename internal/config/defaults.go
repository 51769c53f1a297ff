package config

import "time"

// Built-in fallback values applied with the lowest priority. The admin email
// and access code mirror the seeded administrator account so a fresh install
// works without any configuration.
const (
	DefaultAdminEmail      = "admin@netflix.com"
	DefaultAdminAccessCode = "786391"

	defaultTokenIssuer   = "go-stream-panel"
	defaultTokenDuration = 12 * time.Hour
	// defaultTokenSignKey keeps the admin gate usable on an unconfigured
	// install. Any real deployment must override it via APP_TOKEN_SIGN_KEY.
	defaultTokenSignKey = "stream-panel-dev-sign-key"

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultDBDriver = "pgx"

	defaultPanelServer    = "http://localhost:8080"
	defaultPanelTimeout   = 15 * time.Second
	defaultPollInterval   = 2 * time.Second
	defaultSessionPath    = "session.json"
	defaultResyncInterval = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminEmail:      DefaultAdminEmail,
			AdminAccessCode: DefaultAdminAccessCode,
			TokenIssuer:     defaultTokenIssuer,
			TokenDuration:   defaultTokenDuration,
			TokenSignKey:    defaultTokenSignKey,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{Driver: defaultDBDriver},
		},
		Panel: Panel{
			ServerAddress:  defaultPanelServer,
			RequestTimeout: defaultPanelTimeout,
			PollInterval:   defaultPollInterval,
			SessionPath:    defaultSessionPath,
		},
		Workers: Workers{
			ResyncInterval: defaultResyncInterval,
		},
	}
}
