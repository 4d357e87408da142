package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/config"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// dial builds the one shared channel for an endpoint. Credential selection
// happens here, before any dialing; the connection itself is established
// lazily by gRPC on the first call, so dial never blocks on reachability.
func dial(ep config.Endpoint, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	creds, err := transportCredentials(ep)
	if err != nil {
		return nil, err
	}

	if _, _, err := net.SplitHostPort(ep.Address); err != nil {
		return nil, &errdefs.ChannelError{Address: ep.Address, Err: err}
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(proto.CodecName)),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(ep.Address, opts...)
	if err != nil {
		return nil, &errdefs.ChannelError{Address: ep.Address, Err: err}
	}
	return conn, nil
}

// transportCredentials selects transport security for the endpoint. Insecure
// endpoints never touch certificate fields; TLS endpoints fail with a
// CredentialError before any connection attempt when material is missing.
func transportCredentials(ep config.Endpoint) (credentials.TransportCredentials, error) {
	switch ep.TLSMode {
	case config.TLSModeInsecure:
		return insecure.NewCredentials(), nil
	case config.TLSModeTLS:
		return tlsCredentials(ep)
	default:
		return nil, &errdefs.ConfigError{Environment: ep.Name, Reason: fmt.Sprintf("unknown tls mode %q", ep.TLSMode)}
	}
}

func tlsCredentials(ep config.Endpoint) (credentials.TransportCredentials, error) {
	if ep.CACert == "" {
		return nil, &errdefs.CredentialError{Field: "ca_cert"}
	}

	caPEM, err := os.ReadFile(ep.CACert)
	if err != nil {
		return nil, &errdefs.CredentialError{Field: "ca_cert", Path: ep.CACert, Err: err}
	}
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(caPEM) {
		return nil, &errdefs.CredentialError{Field: "ca_cert", Path: ep.CACert, Err: fmt.Errorf("no certificates found")}
	}

	tlsConfig := &tls.Config{
		RootCAs:    certPool,
		MinVersion: tls.VersionTLS13,
	}

	// Client cert and key come as a pair; one without the other is a
	// configuration mistake, not something to work around.
	switch {
	case ep.ClientCert != "" && ep.ClientKey != "":
		cert, err := tls.LoadX509KeyPair(ep.ClientCert, ep.ClientKey)
		if err != nil {
			return nil, &errdefs.CredentialError{Field: "client_cert", Path: ep.ClientCert, Err: err}
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	case ep.ClientCert != "":
		return nil, &errdefs.CredentialError{Field: "client_key"}
	case ep.ClientKey != "":
		return nil, &errdefs.CredentialError{Field: "client_cert"}
	}

	return credentials.NewTLS(tlsConfig), nil
}
