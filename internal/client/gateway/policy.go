package gateway

// Operation names a gateway call for policy purposes.
type Operation string

const (
	OpRegister Operation = "register"
	OpLogin    Operation = "login"
	OpGenerate Operation = "generate"
)

// Policy decides, per operation, whether a failed primary call is retried on
// the fallback transport.
type Policy struct {
	FallbackOnFailure map[Operation]bool
}

// DefaultPolicy falls back for itinerary generation only. Authentication
// against the backend is never silently replaced by a local account.
func DefaultPolicy() Policy {
	return Policy{FallbackOnFailure: map[Operation]bool{
		OpRegister: false,
		OpLogin:    false,
		OpGenerate: true,
	}}
}

// Fallback reports whether op may fall back.
func (p Policy) Fallback(op Operation) bool {
	return p.FallbackOnFailure[op]
}

// WithFallback returns a copy of p with op set to enabled.
func (p Policy) WithFallback(op Operation, enabled bool) Policy {
	m := make(map[Operation]bool, len(p.FallbackOnFailure)+1)
	for k, v := range p.FallbackOnFailure {
		m[k] = v
	}
	m[op] = enabled
	return Policy{FallbackOnFailure: m}
}
