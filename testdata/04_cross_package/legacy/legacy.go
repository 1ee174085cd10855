package legacy

type Logger interface {
	Log(msg string)
}

type StdLogger struct{}

func (StdLogger) Log(msg string) {}
