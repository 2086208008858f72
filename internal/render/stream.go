package render

import (
	"bytes"
	"fmt"
	"io"
)

// collect runs paint on its own goroutine and buffers everything written to
// the pipe, in emission order, until the producer closes it. Bytes are only
// returned when the producer finished without error.
func collect(paint func(w io.Writer) error) ([]byte, error) {
	pr, pw := io.Pipe()
	done := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("pdf engine panic: %v", p)
			}
			pw.CloseWithError(err)
			done <- err
		}()
		err = paint(pw)
	}()

	var buf bytes.Buffer
	_, copyErr := io.Copy(&buf, pr)
	if err := <-done; err != nil {
		return nil, err
	}
	if copyErr != nil {
		return nil, copyErr
	}
	return buf.Bytes(), nil
}
