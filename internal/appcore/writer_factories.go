package appcore

import (
	"io"

	"seqalign/internal/engine"
	"seqalign/internal/writers"
)

// ResultWriterFactory starts the registered writer for its format.
type ResultWriterFactory struct {
	Options writers.Options
}

func NewResultWriterFactory(opt writers.Options) ResultWriterFactory {
	return ResultWriterFactory{Options: opt}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	opt := w.Options
	opt.BufSize = bufSize
	return writers.StartResultWriter(out, opt)
}
