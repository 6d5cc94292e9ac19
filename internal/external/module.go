package external

import "go.uber.org/fx"

// Module wires the §6 external-system clients: payment gateway, object
// storage, usage reads, and slot-transaction bookkeeping.
var Module = fx.Options(
	fx.Provide(
		NewStripeProvider,
		NewS3ObjectStore,
		NewPostgresUsageClient,
		NewPostgresSlotClient,
	),
)
