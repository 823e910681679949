package models

// CircuitBreakerState is the state of a circuit breaker guarding an outbound dependency.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "closed"
	}
}
