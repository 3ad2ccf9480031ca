package clipboard

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// HoldCommand is the hidden argument that turns the binary into a holder.
const HoldCommand = "__hold-clipboard"

// maxSecret bounds the length prefix a holder will accept.
const maxSecret = 1 << 20

const statusOK = "ok"

// readyFD is the descriptor a holder reports its status on. ExtraFiles
// start right after stdin, stdout and stderr.
const readyFD = 3

var errSecretTooLarge = errors.New("secret exceeds holder limit")

// writeSecret sends text to a holder as a big-endian length prefix followed
// by the bytes.
func writeSecret(w io.Writer, text []byte) error {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(text)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(text)
	return err
}

// readSecret reads exactly one length-prefixed secret into a buffer sized
// up front, so no partial copies are left behind by reallocation.
func readSecret(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("reading secret length: %w", err)
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n > maxSecret {
		return nil, errSecretTooLarge
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		wipe(buf)
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	return buf, nil
}

func report(w io.WriteCloser, err error) {
	msg := statusOK
	if err != nil {
		msg = err.Error()
	}
	_, _ = io.WriteString(w, msg)
	_ = w.Close()
}

// parseStatus turns what a holder wrote on its ready channel into an error.
func parseStatus(status string) error {
	status = strings.TrimSpace(status)
	switch status {
	case statusOK:
		return nil
	case "":
		return fmt.Errorf("%w: holder exited without reporting", ErrHolderStart)
	default:
		return fmt.Errorf("%w: %s", ErrHolderStart, status)
	}
}

// Hold is the holder side of a detached publish. It reads the secret from
// in, publishes it with w, reports the outcome on ready and then blocks
// until another application takes the clipboard or ctx ends. The secret is
// locked in memory while held and wiped before Hold returns.
func Hold(ctx context.Context, in io.Reader, ready io.WriteCloser, w Writer) error {
	buf, err := readSecret(in)
	if err != nil {
		report(ready, err)
		return err
	}
	unlock := lockMemory(buf)
	defer func() {
		wipe(buf)
		unlock()
	}()

	// The clipboard serves selection requests straight from buf, so it has
	// to stay intact until ownership is lost.
	changed, err := w.Write(buf)
	if err != nil {
		report(ready, err)
		return err
	}
	report(ready, nil)

	select {
	case <-changed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ReadyFile returns the holder's end of the status channel.
func ReadyFile() *os.File {
	return os.NewFile(readyFD, "clipboard-ready")
}
