package errdefs

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
)

// ConfigError reports a missing or malformed environment entry. It is raised
// before any network interaction and is never retried.
type ConfigError struct {
	Environment string
	Reason      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: environment %q: %s", e.Environment, e.Reason)
}

// CredentialError reports missing or unreadable TLS material.
type CredentialError struct {
	Field string // ca_cert, client_cert, client_key
	Path  string
	Err   error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credentials: %s %q: %v", e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("credentials: %s is required", e.Field)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// ChannelError reports a channel that could not be constructed, typically an
// unusable address.
type ChannelError struct {
	Address string
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel: %s: %v", e.Address, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

// ValidationError reports a request that fails local shape checks. It is
// raised by the service facades before the stub is invoked.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// RPCError is a remote-reported failure, normalized to the same shape for
// unary and streaming calls. The status code and message are relayed verbatim;
// retry policy belongs to the caller.
type RPCError struct {
	Code    codes.Code
	Message string
	Method  string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s: %s: %s", e.Method, e.Code, e.Message)
}

// TimeoutError reports a unary call that exceeded its deadline. The
// underlying call is cancelled best-effort before this is returned.
type TimeoutError struct {
	Method  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("rpc %s: deadline exceeded after %s", e.Method, e.Timeout)
	}
	return fmt.Sprintf("rpc %s: deadline exceeded", e.Method)
}

// IsConfig reports whether err is a ConfigError.
func IsConfig(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsCredential reports whether err is a CredentialError.
func IsCredential(err error) bool {
	var e *CredentialError
	return errors.As(err, &e)
}

// IsChannel reports whether err is a ChannelError.
func IsChannel(err error) bool {
	var e *ChannelError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsTimeout reports whether err is a TimeoutError.
func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

// Code extracts the gRPC status code from an RPCError, or codes.OK when err is
// nil and codes.Unknown for anything else.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var e *RPCError
	if errors.As(err, &e) {
		return e.Code
	}
	if IsTimeout(err) {
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}
