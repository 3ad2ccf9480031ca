package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// DetachedPublisher starts a holder process in its own session and returns
// once the holder has taken the clipboard. The holder is released, not
// waited for: when the caller exits it is reparented to init, which reaps
// it after the selection changes hands.
type DetachedPublisher struct {
	Path string   // executable to start; empty means the running binary
	Args []string // arguments that select the holder entry point
	Env  []string // extra environment for the holder
}

// NewDetachedPublisher returns a publisher that re-executes the running
// binary with HoldCommand.
func NewDetachedPublisher() *DetachedPublisher {
	return &DetachedPublisher{Args: []string{HoldCommand}}
}

func (p *DetachedPublisher) Publish(ctx context.Context, text []byte) error {
	path := p.Path
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHolderStart, err)
		}
		path = exe
	}

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHolderStart, err)
	}
	defer stdinW.Close()

	readyR, readyW, err := os.Pipe()
	if err != nil {
		stdinR.Close()
		return fmt.Errorf("%w: %v", ErrHolderStart, err)
	}
	defer readyR.Close()

	cmd := exec.Command(path, p.Args...)
	cmd.Env = append(os.Environ(), p.Env...)
	cmd.Stdin = stdinR
	// Stdout and Stderr stay nil, which binds them to /dev/null, so the
	// holder never writes over a later shell prompt.
	cmd.ExtraFiles = []*os.File{readyW}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	err = cmd.Start()
	stdinR.Close()
	readyW.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHolderStart, err)
	}

	if err := writeSecret(stdinW, text); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("%w: sending secret: %v", ErrHolderStart, err)
	}
	stdinW.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = readyR.SetReadDeadline(deadline)
	}
	status, err := io.ReadAll(io.LimitReader(readyR, 4096))
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("%w: waiting for holder: %v", ErrHolderStart, err)
	}

	if err := parseStatus(string(status)); err != nil {
		// The holder exits on its own after a failed start; reap it.
		_ = cmd.Wait()
		return err
	}
	return cmd.Process.Release()
}
