//go:build !linux

package clipboard

// NewPublisher returns a publisher that writes synchronously; the platform
// clipboard outlives this process.
func NewPublisher() Publisher {
	return SyncPublisher{Writer: NewSystemWriter()}
}
