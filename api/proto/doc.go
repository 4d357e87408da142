/*
Package proto defines the wire contract of the Burrow gRPC API.

Burrow exposes five service domains over a single gRPC channel: JobService,
NetworkService, VolumeService, MonitoringService, and RuntimeService. This
package carries the message types, full method names, client stubs, and server
descriptors for all five, hand-maintained against the platform's fixed schema.

Messages travel as JSON over gRPC (content-subtype "json"); importing this
package registers the codec. Messages that implement proto.Message are encoded
as protobuf instead, so mixed deployments keep working.

Clients normally do not use this package directly; pkg/client wraps the stubs
with validation, error normalization, and stream lifecycle management.
*/
package proto
