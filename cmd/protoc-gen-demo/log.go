package main

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("protoc-gen-demo")

var stderrFormat = logging.MustStringFormatter(
	`%{color}protoc-gen-demo ▶ %{message}%{color:reset}`,
)

// setupLogging wires a stderr backend at the given level — stdout is
// reserved for the CodeGeneratorResponse bytes, so diagnostics must
// never land there.
func setupLogging(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetFormatter(stderrFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
