package port

// LineSource yields one line of input per call.
type LineSource interface {
	// ReadLine returns the next line without its terminator, or io.EOF once
	// the stream is exhausted.
	ReadLine() (string, error)

	Close() error
}
