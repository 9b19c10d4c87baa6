package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// String returns the address in "host:port" form.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "[host]:port" string into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(value))
	if err != nil {
		return errors.New("address must be in [host]:port format")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.New("port must be a number")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "600s", "10m")
//	-bcrypt-cost bcrypt work factor for password hashing
//	-api-key shared secret for the administrative surface
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	values := newFlagValues()
	registerFlags(flag.CommandLine, values)
	flag.Parse()
	return values.toConfig()
}

// registerFlags binds every configuration flag to the given flag set.
// Extracted so tests can parse an isolated flag set instead of the
// process-wide flag.CommandLine.
func registerFlags(fs *flag.FlagSet, v *flagValues) {
	fs.Var(&v.serverAddress, "a", "Net address host:port")
	fs.StringVar(&v.databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&v.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&v.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&v.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&v.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&v.tokenDuration, "token-duration", 0, "Token duration (e.g., 600s, 10m)")
	fs.IntVar(&v.bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor for password hashing")
	fs.StringVar(&v.apiKey, "api-key", "", "API key for the administrative surface")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
}

// parseFlagSet parses args into a fresh flag set and returns the resulting
// config. Used by tests.
func parseFlagSet(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("accounts", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	values := newFlagValues()
	registerFlags(fs, values)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return values.toConfig(), nil
}

// flagValues carries the raw flag destinations so that parsing can be
// exercised in tests without touching the process-wide flag.CommandLine.
type flagValues struct {
	serverAddress  NetAddress
	databaseDSN    string
	jsonConfigPath string
	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	bcryptCost     int
	apiKey         string
	requestTimeout time.Duration
}

func newFlagValues() *flagValues {
	return &flagValues{}
}

func (v *flagValues) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  v.tokenSignKey,
			TokenIssuer:   v.tokenIssuer,
			TokenDuration: v.tokenDuration,
			BcryptCost:    v.bcryptCost,
		},
		Security: Security{
			APIKey: v.apiKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: v.databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    v.serverAddress.String(),
			RequestTimeout: v.requestTimeout,
		},
		JSONFilePath: v.jsonConfigPath,
	}
}
