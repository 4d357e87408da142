package client

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/burrowlabs/burrow/pkg/config"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestCA writes a self-signed CA certificate and returns its path.
func writeTestCA(t *testing.T, dir string) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "burrow-test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(dir, "ca.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	return path
}

// writeTestKeyPair writes a self-signed client certificate and key.
func writeTestKeyPair(t *testing.T, dir string) (certPath, keyPath string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "burrow-test-client"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	certPath = filepath.Join(dir, "client.pem")
	keyPath = filepath.Join(dir, "client-key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certPath, keyPath
}

// TestTransportCredentials tests credential selection per endpoint
func TestTransportCredentials(t *testing.T) {
	dir := t.TempDir()
	caPath := writeTestCA(t, dir)
	certPath, keyPath := writeTestKeyPair(t, dir)

	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o600))

	tests := []struct {
		name      string
		ep        config.Endpoint
		wantProto string
		wantField string
	}{
		{
			name:      "insecure needs no material",
			ep:        config.Endpoint{Name: "local", Address: "127.0.0.1:1", TLSMode: config.TLSModeInsecure},
			wantProto: "insecure",
		},
		{
			name:      "tls with ca only",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: caPath},
			wantProto: "tls",
		},
		{
			name:      "mtls with full pair",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: caPath, ClientCert: certPath, ClientKey: keyPath},
			wantProto: "tls",
		},
		{
			name:      "tls without ca",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS},
			wantField: "ca_cert",
		},
		{
			name:      "tls with unreadable ca",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: filepath.Join(dir, "missing.pem")},
			wantField: "ca_cert",
		},
		{
			name:      "tls with non-pem ca",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: garbage},
			wantField: "ca_cert",
		},
		{
			name:      "client cert without key",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: caPath, ClientCert: certPath},
			wantField: "client_key",
		},
		{
			name:      "client key without cert",
			ep:        config.Endpoint{Name: "prod", Address: "h:1", TLSMode: config.TLSModeTLS, CACert: caPath, ClientKey: keyPath},
			wantField: "client_cert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := transportCredentials(tt.ep)

			if tt.wantField != "" {
				require.Error(t, err)
				var cerr *errdefs.CredentialError
				require.ErrorAs(t, err, &cerr)
				assert.Equal(t, tt.wantField, cerr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProto, creds.Info().SecurityProtocol)
		})
	}
}

// TestTransportCredentialsUnknownMode tests the defensive default branch
func TestTransportCredentialsUnknownMode(t *testing.T) {
	_, err := transportCredentials(config.Endpoint{Name: "x", Address: "h:1", TLSMode: "mutual"})
	require.Error(t, err)
	assert.True(t, errdefs.IsConfig(err))
}

// TestDialRejectsBadAddress tests that a malformed address fails before any connection
func TestDialRejectsBadAddress(t *testing.T) {
	_, err := dial(config.Endpoint{Name: "x", Address: "no-port", TLSMode: config.TLSModeInsecure})
	require.Error(t, err)
	assert.True(t, errdefs.IsChannel(err), "expected a ChannelError, got %T", err)
}

// TestDialIsLazy tests that dialing an unreachable endpoint succeeds
func TestDialIsLazy(t *testing.T) {
	conn, err := dial(config.Endpoint{Name: "x", Address: "127.0.0.1:1", TLSMode: config.TLSModeInsecure})
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}
