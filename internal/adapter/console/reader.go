package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// RetryMessage is printed each time a read fails and is retried.
const RetryMessage = "Problem reading input. Please try again!"

// LineReader reads newline-terminated lines from a stream. Failed reads are
// reported and retried; only end of stream ends the input.
type LineReader struct {
	reader     *bufio.Reader
	closer     io.Closer
	out        io.Writer
	maxRetries int
	logger     *logrus.Entry
}

// NewLineReader wraps r. Retry notices go to out. maxRetries caps consecutive
// failed reads of a single line; zero retries forever. If r is an io.Closer
// it is closed by Close.
func NewLineReader(r io.Reader, out io.Writer, maxRetries int, logger *logrus.Logger) *LineReader {
	closer, _ := r.(io.Closer)
	return &LineReader{
		reader:     bufio.NewReader(r),
		closer:     closer,
		out:        out,
		maxRetries: maxRetries,
		logger:     logger.WithField("component", "console"),
	}
}

// ReadLine returns the next line with its trailing "\n" or "\r\n" removed.
// A final line without a terminator is returned before io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	var partial strings.Builder
	failures := 0

	for {
		chunk, err := r.reader.ReadString('\n')
		partial.WriteString(chunk)

		if err == nil {
			return trimEOL(partial.String()), nil
		}
		if errors.Is(err, io.EOF) {
			if partial.Len() > 0 {
				return trimEOL(partial.String()), nil
			}
			return "", io.EOF
		}

		failures++
		r.logger.WithError(err).WithField("attempt", failures).Warn("read failed")
		fmt.Fprintln(r.out, RetryMessage)

		if r.maxRetries > 0 && failures >= r.maxRetries {
			return "", fmt.Errorf("read failed after %d attempts: %w", failures, err)
		}
	}
}

// Close releases the underlying stream, if it can be closed.
func (r *LineReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
