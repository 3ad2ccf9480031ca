package clipboard

// NewPublisher returns the detach-and-hold publisher.
func NewPublisher() Publisher {
	return NewDetachedPublisher()
}
