/*
Package client provides a Go client library for the Burrow gRPC API.

The client package wraps the Burrow daemon's five service domains behind one
shared gRPC channel with a convenient, idiomatic Go interface. It handles
endpoint resolution, TLS and mTLS credential selection, per-call deadlines,
error normalization, and the full lifecycle of server-streaming calls.

# Architecture

One Client owns one channel; the five facades multiplex over it:

	┌──────────────────── APPLICATION CODE ──────────────────────┐
	│                                                            │
	│  import "github.com/burrowlabs/burrow/pkg/client"          │
	│                                                            │
	│  c, err := client.New("production")                        │
	│  job, err := c.Job().Run(ctx, req)                         │
	│                                                            │
	└──────────────────┬─────────────────────────────────────────┘
	                   │
	┌──────────────────▼──── pkg/client ─────────────────────────┐
	│                                                            │
	│   Job()   Network()   Volume()   Monitoring()   Runtime()  │
	│     └────────┴───────────┴───────────┴────────────┘        │
	│                          │                                 │
	│               pkg/call (invoke, subscribe,                 │
	│               stream registry, normalization)              │
	│                          │                                 │
	│               one shared gRPC channel                      │
	│               (insecure or TLS 1.3 / mTLS)                 │
	└──────────────────────────┬─────────────────────────────────┘
	                           │ gRPC
	                           ▼
	                    Burrow daemon

# Core Features

Connection Management:
  - Named environments resolved from a YAML configuration file
  - Lazy connection, construction never blocks on reachability
  - One channel shared by all five service facades
  - Close cancels every active stream before releasing the channel

Credential Handling:
  - Insecure endpoints never read certificate material
  - TLS endpoints require a CA bundle, optionally a client cert/key pair
  - Credential problems fail fast, before any connection attempt

Error Handling:
  - RPC failures surface as *errdefs.RPCError with code, message, and method
  - Deadline expiry surfaces as *errdefs.TimeoutError
  - Invalid local input fails as *errdefs.ValidationError without any RPC

# Usage

Creating a client from a named environment:

	c, err := client.New("production")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

Running a job and following its logs:

	job, err := c.Job().Run(ctx, &proto.RunJobRequest{Command: "make test"})
	if err != nil {
		log.Fatal(err)
	}

	logs, err := c.Job().GetLogs(ctx, job.Id, true)
	if err != nil {
		log.Fatal(err)
	}
	for ev := range logs.Events() {
		if ev.Kind == call.EventData {
			fmt.Println(ev.Data.Line)
		}
	}

Every stream delivers zero or more data events followed by exactly one
terminal event (end, error, or cancelled); Cancel on the handle is idempotent
and stops data delivery immediately.
*/
package client
