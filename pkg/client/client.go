package client

import (
	"strings"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/config"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Client talks to a Burrow daemon. All five service facades share one
// channel; the client owns the channel and every active stream, both released
// by Close.
type Client struct {
	endpoint config.Endpoint
	conn     *grpc.ClientConn
	streams  *call.Registry
	log      zerolog.Logger

	callTimeout time.Duration

	job        *JobClient
	network    *NetworkClient
	volume     *VolumeClient
	monitoring *MonitoringClient
	runtime    *RuntimeClient
}

type options struct {
	resolver    *config.Resolver
	dialOpts    []grpc.DialOption
	callTimeout time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithResolver supplies the environment resolver used by New instead of the
// default configuration file.
func WithResolver(r *config.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithDialOptions appends extra gRPC dial options, e.g. an in-process dialer
// or interceptors.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

// WithCallTimeout sets a per-call deadline applied to every unary call.
// Zero (the default) leaves deadlines to the caller's context.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) { o.callTimeout = d }
}

// New resolves the named environment and connects to it. The configuration
// file is loaded from the default path unless WithResolver overrides it.
func New(environment string, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resolver := o.resolver
	if resolver == nil {
		var err error
		resolver, err = config.LoadDefault()
		if err != nil {
			return nil, err
		}
	}

	ep, err := resolver.Resolve(environment)
	if err != nil {
		return nil, err
	}
	return NewWithEndpoint(ep, opts...)
}

// NewWithEndpoint connects to an explicitly resolved endpoint. The underlying
// connection is established lazily; construction fails only on credential or
// address problems.
func NewWithEndpoint(ep config.Endpoint, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := dial(ep, o.dialOpts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		endpoint:    ep,
		conn:        conn,
		streams:     call.NewRegistry(),
		callTimeout: o.callTimeout,
		log:         log.WithComponent("client").With().Str("environment", ep.Name).Logger(),
	}

	c.job = &JobClient{stub: proto.NewJobServiceClient(conn), c: c}
	c.network = &NetworkClient{stub: proto.NewNetworkServiceClient(conn), c: c}
	c.volume = &VolumeClient{stub: proto.NewVolumeServiceClient(conn), c: c}
	c.monitoring = &MonitoringClient{stub: proto.NewMonitoringServiceClient(conn), c: c}
	c.runtime = &RuntimeClient{stub: proto.NewRuntimeServiceClient(conn), c: c}

	c.log.Debug().
		Str("address", ep.Address).
		Str("tls", string(ep.TLSMode)).
		Msg("client ready")

	return c, nil
}

// Job returns the job facade.
func (c *Client) Job() *JobClient { return c.job }

// Network returns the network facade.
func (c *Client) Network() *NetworkClient { return c.network }

// Volume returns the volume facade.
func (c *Client) Volume() *VolumeClient { return c.volume }

// Monitoring returns the monitoring facade.
func (c *Client) Monitoring() *MonitoringClient { return c.monitoring }

// Runtime returns the runtime facade.
func (c *Client) Runtime() *RuntimeClient { return c.runtime }

// Endpoint returns the endpoint the client was built for.
func (c *Client) Endpoint() config.Endpoint { return c.endpoint }

// ActiveStreams returns the ids of all currently active streams.
func (c *Client) ActiveStreams() []string { return c.streams.IDs() }

// Close cancels all active streams and releases the channel. After Close the
// client must not be used.
func (c *Client) Close() error {
	c.streams.Close()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// requireID fails fast when a locally checkable identifier is empty.
func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &errdefs.ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}
