package renderer

import (
	"log"
	"os"

	fortiolog "fortio.org/log"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// DefaultLogger is the stdlib-only core.Logger: a plain
// *log.Logger writing to stderr. Library callers who do not want the
// fortio.org/log dependency use this; cmd/raytracer wires
// FortioLogger instead.
type DefaultLogger struct{}

var stdLogger = log.New(os.Stderr, "", log.LstdFlags)

// Printf implements core.Logger.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	stdLogger.Printf(format, args...)
}

// FortioLogger adapts fortio.org/log's package-level logging functions
// to core.Logger, so the CLI binary gets structured, leveled log
// output (level, color, timestamps) instead of DefaultLogger's bare
// lines.
type FortioLogger struct{}

// NewFortioLogger returns a core.Logger backed by fortio.org/log.
func NewFortioLogger() FortioLogger {
	return FortioLogger{}
}

// Printf implements core.Logger, forwarding to fortio's Infof.
func (FortioLogger) Printf(format string, args ...interface{}) {
	fortiolog.Infof(format, args...)
}

var _ core.Logger = DefaultLogger{}
var _ core.Logger = FortioLogger{}
