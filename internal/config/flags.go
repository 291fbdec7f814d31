package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers every configuration flag on fs and returns the config
// that receives the parsed values. Values are populated once fs is parsed.
//
// Flags:
//
//	-a, --address            server address in format [host]:[port]
//	-d, --database-dsn       database DSN
//	-c, --config             json file path with configs
//	    --token-sign-key     token signing key
//	    --token-issuer       token issuer name
//	    --token-duration     token duration (e.g., "1h", "30m")
//	    --request-timeout    server request timeout (e.g., "30s", "1m")
//	    --adapter-address    backend address used by the client
//	    --adapter-timeout    client request timeout
//	    --adapter-token      bearer token used by the client
//	    --keyring-service    keyring service name
//	    --keyring-backend    keyring backend
//	    --keyring-dir        directory of the file keyring backend
//	    --sync-interval      local cache refresh interval
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}
	addr := &netAddressFlag{cfg: &cfg.Server}

	fs.VarP(addr, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "Backend address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Backend request timeout")
	fs.StringVar(&cfg.Adapter.Token, "adapter-token", "", "Backend bearer token")
	fs.StringVar(&cfg.Keyring.ServiceName, "keyring-service", "", "Keyring service name")
	fs.StringVar(&cfg.Keyring.Backend, "keyring-backend", "", "Keyring backend")
	fs.StringVar(&cfg.Keyring.FileDir, "keyring-dir", "", "File keyring directory")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Local cache refresh interval")

	return cfg
}

// ParseFlags parses args with a fresh flag set. Unknown flags are ignored so
// that the same argument list can be shared with subcommand parsers.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	cfg := BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

// netAddressFlag writes a parsed NetAddress straight into Server.HTTPAddress.
type netAddressFlag struct {
	addr NetAddress
	cfg  *Server
}

func (f *netAddressFlag) String() string { return f.addr.String() }

func (f *netAddressFlag) Type() string { return "host:port" }

func (f *netAddressFlag) Set(s string) error {
	if err := f.addr.Set(s); err != nil {
		return err
	}
	f.cfg.HTTPAddress = f.addr.String()
	return nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string { return "host:port" }

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ pflag.Value = (*NetAddress)(nil)
