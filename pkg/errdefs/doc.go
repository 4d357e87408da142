/*
Package errdefs defines the error taxonomy of the Burrow client.

Local failures (ConfigError, CredentialError, ChannelError, ValidationError)
happen before any network interaction and are never retried by the client.
Remote failures surface as RPCError with the gRPC status code and message
relayed verbatim, and deadline expiry as TimeoutError; the client performs no
automatic retry, so non-idempotent operations such as running a job are never
duplicated behind the caller's back.

Callers match with errors.As against the concrete types or use the Is*
predicates.
*/
package errdefs
