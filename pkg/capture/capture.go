// Package capture redirects the process's standard output or standard error
// for the duration of a function call and returns what was written.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrActive is returned when a redirection of the same stream is already in
// progress, for example when Stdout is called from inside another Stdout.
var ErrActive = errors.New("capture already active")

// PanicError reports a panic raised by the function passed to Stdout.
type PanicError struct {
	Value interface{}
}

// Kind returns the dynamic type of the panic value.
func (e *PanicError) Kind() string {
	return fmt.Sprintf("%T", e.Value)
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind(), e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// os.Stdout and os.Stderr are process-wide, one redirection per stream.
var stdoutMu, stderrMu sync.Mutex

// Stdout calls fn with os.Stdout redirected into a pipe and returns the text
// written during the call. The original os.Stdout is restored on every exit
// path. If fn panics, the panic is recovered and returned as a *PanicError
// together with whatever was written before it.
//
// Only one Stdout call may be active at a time. A nested or concurrent call
// does not wait, it returns ErrActive without calling fn.
func Stdout(fn func()) (string, error) {
	return redirect(&stdoutMu, &os.Stdout, "stdout", fn)
}

// Stderr is like Stdout but redirects os.Stderr.
func Stderr(fn func()) (string, error) {
	return redirect(&stderrMu, &os.Stderr, "stderr", fn)
}

func redirect(mu *sync.Mutex, target **os.File, name string, fn func()) (out string, err error) {
	if !mu.TryLock() {
		return "", fmt.Errorf("%s: %w", name, ErrActive)
	}
	defer mu.Unlock()

	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("os.Pipe(): %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(&buf, r)
		done <- err
	}()

	orig := *target
	*target = w

	defer func() {
		*target = orig
		w.Close()

		copyErr := <-done
		out = buf.String()
		if err == nil && copyErr != nil {
			err = fmt.Errorf("reading captured %s: %w", name, copyErr)
		}
	}()

	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()

	fn()

	return "", nil
}
