package cmd

import (
	"io"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/lexer"
)

// syncWriter adapts an io.Writer to the writer the logger expects.
type syncWriter struct {
	w io.Writer
}

func (s syncWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s syncWriter) Sync() error {
	if syncer, ok := s.w.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

func newLogger(w io.Writer, quiet bool) slog.Logger {
	if quiet {
		return logger.NewNopLogger()
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter: syncWriter{w: w},
	})
}

// traceObserver logs parser events.
type traceObserver struct {
	log slog.Logger
}

func (o *traceObserver) TokenConsumed(tok lexer.Token) {
	line, col := tok.Pos()
	o.log.Infof("trace: %d:%d consumed %v", line, col, tok)
}

func (o *traceObserver) NodeProduced(node ast.Node) {
	o.log.Infof("trace: produced %s %v", node.Type(), node)
}
