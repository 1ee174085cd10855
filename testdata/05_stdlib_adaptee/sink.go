package sink

import "io"

type Sink interface {
	Emit(line string)
}

type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Emit(line string) { _, _ = io.WriteString(s.W, line+"\n") }
