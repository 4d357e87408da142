package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/burrowlabs/burrow/pkg/errdefs"
	"gopkg.in/yaml.v3"
)

// TLSMode selects the transport security of an endpoint.
type TLSMode string

const (
	// TLSModeInsecure grants no encryption. Intended for trusted loopback
	// use only; it must be selected explicitly in configuration.
	TLSModeInsecure TLSMode = "insecure"
	// TLSModeTLS authenticates the server with a CA certificate and, when
	// client material is present, the client with mTLS.
	TLSModeTLS TLSMode = "tls"
)

// Endpoint is a fully resolved connection target. It is constructed once at
// client initialization and immutable thereafter.
type Endpoint struct {
	Name       string  `yaml:"-"`
	Address    string  `yaml:"address"`
	TLSMode    TLSMode `yaml:"tls"`
	CACert     string  `yaml:"ca_cert,omitempty"`
	ClientCert string  `yaml:"client_cert,omitempty"`
	ClientKey  string  `yaml:"client_key,omitempty"`
}

// Resolver maps environment names to endpoints. It performs pure lookup over
// already-parsed configuration and never touches the network.
type Resolver struct {
	environments map[string]Endpoint
}

// NewResolver builds a resolver over the given environments.
func NewResolver(environments map[string]Endpoint) *Resolver {
	envs := make(map[string]Endpoint, len(environments))
	for name, ep := range environments {
		ep.Name = name
		envs[name] = ep
	}
	return &Resolver{environments: envs}
}

// Resolve returns the endpoint for the named environment. It fails with a
// ConfigError when the environment is absent or malformed.
func (r *Resolver) Resolve(name string) (Endpoint, error) {
	ep, ok := r.environments[name]
	if !ok {
		return Endpoint{}, &errdefs.ConfigError{Environment: name, Reason: "no such environment"}
	}
	if err := validate(ep); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

// Environments returns the names of all configured environments.
func (r *Resolver) Environments() []string {
	names := make([]string, 0, len(r.environments))
	for name := range r.environments {
		names = append(names, name)
	}
	return names
}

func validate(ep Endpoint) error {
	if ep.Address == "" {
		return &errdefs.ConfigError{Environment: ep.Name, Reason: "missing address"}
	}
	if _, _, err := net.SplitHostPort(ep.Address); err != nil {
		return &errdefs.ConfigError{Environment: ep.Name, Reason: fmt.Sprintf("address %q is not host:port", ep.Address)}
	}
	switch ep.TLSMode {
	case TLSModeInsecure:
		// Certificate material alongside an insecure endpoint is a
		// misconfiguration, not something to default around silently.
		if ep.CACert != "" || ep.ClientCert != "" || ep.ClientKey != "" {
			return &errdefs.ConfigError{Environment: ep.Name, Reason: "certificate material set on an insecure endpoint"}
		}
	case TLSModeTLS:
	case "":
		return &errdefs.ConfigError{Environment: ep.Name, Reason: "missing tls mode"}
	default:
		return &errdefs.ConfigError{Environment: ep.Name, Reason: fmt.Sprintf("unknown tls mode %q", ep.TLSMode)}
	}
	return nil
}

// File is the on-disk configuration format consumed by Load.
type File struct {
	Environments map[string]Endpoint `yaml:"environments"`
}

// Load parses a YAML environment file and returns a resolver over it.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(f.Environments) == 0 {
		return nil, &errdefs.ConfigError{Environment: "", Reason: fmt.Sprintf("no environments defined in %s", path)}
	}
	return NewResolver(f.Environments), nil
}

// DefaultPath returns the configuration file path: $BURROW_CONFIG when set,
// otherwise ~/.burrow/config.yaml.
func DefaultPath() (string, error) {
	if path := os.Getenv("BURROW_CONFIG"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".burrow", "config.yaml"), nil
}

// LoadDefault loads the resolver from DefaultPath.
func LoadDefault() (*Resolver, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
