package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrClosed = errors.New("input already released")

// LineReader asks a question and reads one line of operator input.
type LineReader struct {
	in     *bufio.Reader
	src    io.Reader
	out    io.Writer
	closed bool
}

func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:  bufio.NewReader(in),
		src: in,
		out: out,
	}
}

func (r *LineReader) ReadLine(question string) (string, error) {
	if r.closed {
		return "", ErrClosed
	}

	fmt.Fprintf(r.out, "\n%s", question)

	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the input. Only the first call has an effect.
func (r *LineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
