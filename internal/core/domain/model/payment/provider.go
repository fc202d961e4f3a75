package payment

import "context"

// Provider is the outbound boundary to an external payment provider.
// Implementations represent a network call that can fail or hang; callers are
// expected to apply their own timeout through the context.
type Provider interface {
	// TestConnection reports whether the provider boundary is reachable.
	TestConnection(ctx context.Context) error

	// ProcessTransaction attempts to authorize a charge of amount against the
	// given method. A declined charge is a business outcome, reported as
	// (false, nil); only transport failures surface as errors. No retries are
	// performed at this layer.
	ProcessTransaction(ctx context.Context, method *Method, amount float64) (bool, error)
}
