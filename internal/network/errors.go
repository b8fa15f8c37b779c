package network

// SolverError wraps a hard failure in model construction that occurs
// before the solver is ever invoked, e.g. an empty DC candidate set. It
// propagates unmodified through the solver driver, per §7.
type SolverError struct {
	Reason string
}

func (e *SolverError) Error() string {
	return "solver error: " + e.Reason
}
