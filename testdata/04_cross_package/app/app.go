package app

import "example.com/crosspackage/legacy"

type Printer interface {
	Print(msg string) error
}

type LoggerPrinter struct {
	Logger legacy.Logger
}

func (p LoggerPrinter) Print(msg string) error {
	p.Logger.Log(msg)
	return nil
}
