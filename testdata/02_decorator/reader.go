package reader

type Reader interface {
	Read() string
}

type FileReader struct{}

func (FileReader) Read() string { return "data" }

// LoggingReader wraps a Reader and is itself a Reader: a decorator, not an adapter.
type LoggingReader struct {
	inner Reader
}

func (l LoggingReader) Read() string { return l.inner.Read() }

// Holder keeps a Reader but exposes nothing.
type Holder struct {
	r Reader
}
