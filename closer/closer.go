package closer

// Closer is a type that can be closed exactly once, and whose closed state
// can be observed via a channel, allowing it to participate in a select
type Closer interface {
	// Close releases the resources associated with this instance. Calling
	// Close on an already closed instance is a no-op
	Close()

	// IsClosed returns a channel that is closed once Close has been called
	IsClosed() <-chan struct{}
}

// IsClosed returns whether the provided Closer has been closed without
// blocking the caller
func IsClosed(c Closer) bool {
	select {
	case <-c.IsClosed():
		return true
	default:
		return false
	}
}
