package ops

// Result is the envelope every successful tool operation returns.
// Failures are returned as *NotFoundError or *ValidationError instead,
// which carry the same success=false shape on the wire.
type Result struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data,omitempty"`
	Message      string `json:"message,omitempty"`
	SystemSource string `json:"systemSource,omitempty"`
}

// NotFoundError reports that the requested container or vessel does not
// exist in the backing system.
type NotFoundError struct {
	Message      string
	SystemSource string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError reports that the entity exists but one or more
// business rules blocked the action. Violations lists every violated
// rule in evaluation order, not just the first.
type ValidationError struct {
	Message      string
	SystemSource string
	Violations   []string
}

func (e *ValidationError) Error() string { return e.Message }
