package mpir

import "github.com/mpirlabs/mpir-go/pkg/mpir/internal/backend"

// Version is the semantic version of the wrapper, populated at build time via
// ldflags. In development it defaults to the value below.
var Version = "v0.1.0-dev"

// WrapperVersion returns the wrapper's own version.
func WrapperVersion() string {
	return Version
}

// EngineVersion identifies the arithmetic engine the binary was built with:
// the linked MPIR library version under `-tags=mpir`, or "math/big" for the
// portable engine.
func EngineVersion() string {
	return backend.EngineVersion()
}
