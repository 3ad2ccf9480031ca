// Package clipboard publishes a generated password to the system clipboard.
//
// On Linux the selection belongs to a live X client, so the password is
// handed to a detached holder process that keeps serving it until another
// application claims the clipboard. Elsewhere the platform keeps clipboard
// content on its own and publishing is a single synchronous write.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	ErrUnavailable = errors.New("clipboard is unavailable")
	ErrHolderStart = errors.New("unable to start clipboard holder")
)

// Publisher makes text available for one paste.
type Publisher interface {
	Publish(ctx context.Context, text []byte) error
}

// Writer is the platform clipboard. The returned channel fires once another
// application has taken ownership of the content.
type Writer interface {
	Write(text []byte) (<-chan struct{}, error)
}

// SystemWriter writes plain text through golang.design/x/clipboard.
type SystemWriter struct {
	once    sync.Once
	initErr error
}

// NewSystemWriter returns a Writer backed by the system clipboard.
func NewSystemWriter() *SystemWriter {
	return &SystemWriter{}
}

func (w *SystemWriter) Write(text []byte) (<-chan struct{}, error) {
	w.once.Do(func() {
		if err := xclipboard.Init(); err != nil {
			w.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	if w.initErr != nil {
		return nil, w.initErr
	}

	changed := xclipboard.Write(xclipboard.FmtText, text)
	if changed == nil {
		return nil, fmt.Errorf("%w: write rejected", ErrUnavailable)
	}
	return changed, nil
}

// SyncPublisher writes to the clipboard and returns immediately.
type SyncPublisher struct {
	Writer Writer
}

func (p SyncPublisher) Publish(_ context.Context, text []byte) error {
	_, err := p.Writer.Write(text)
	return err
}
