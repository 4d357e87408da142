/*
Package config resolves named environments to Burrow endpoints.

An environment names a daemon to talk to: its address, transport security
mode, and certificate material for TLS endpoints. The Resolver is a pure
lookup over already-parsed configuration; Load and LoadDefault provide the
YAML file convention:

	environments:
	  default:
	    address: localhost:50051
	    tls: insecure
	  production:
	    address: burrow.example.com:50051
	    tls: tls
	    ca_cert: /etc/burrow/ca.crt
	    client_cert: /etc/burrow/client.crt
	    client_key: /etc/burrow/client.key

The file lives at ~/.burrow/config.yaml, overridable with $BURROW_CONFIG.
Insecure endpoints must not carry certificate material; the resolver rejects
the combination rather than guessing which mode was meant.
*/
package config
