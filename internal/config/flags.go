package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-admin-email reserved administrator email
//	-access-code shared admin access code
//	-token-sign-key gate-token signing key
//	-token-issuer gate-token issuer name
//	-token-duration gate-token lifetime (e.g., "12h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-panel-server panel API base address
//	-session-path panel session file path
//	-poll-interval panel revision poll interval
//	-panel-log panel log file path
//	-resync-interval safety-net resync interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var adminEmail string
	var accessCode string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var panelServer string
	var sessionPath string
	var pollInterval time.Duration
	var panelLog string
	var resyncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&adminEmail, "admin-email", "", "Reserved administrator email")
	flag.StringVar(&accessCode, "access-code", "", "Shared admin access code")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Gate-token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Gate-token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Gate-token duration (e.g., 12h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&panelServer, "panel-server", "", "Panel API base address")
	flag.StringVar(&sessionPath, "session-path", "", "Panel session file path")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Panel revision poll interval")
	flag.StringVar(&panelLog, "panel-log", "", "Panel log file path")
	flag.DurationVar(&resyncInterval, "resync-interval", 0, "Safety-net resync interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AdminEmail:      adminEmail,
			AdminAccessCode: accessCode,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Panel: Panel{
			ServerAddress:  panelServer,
			SessionPath:    sessionPath,
			PollInterval:   pollInterval,
			LogPath:        panelLog,
			RequestTimeout: 0,
		},
		Workers:      Workers{ResyncInterval: resyncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
