// Package build holds build-time metadata embedded into the engine
// binary by the Go linker.
package build

// Version is the engine's version string. Release builds override it
// with the tagged version via:
//
//	go build -ldflags "-X laptudirm.com/x/corvid/internal/build.Version=v1.0.0"
var Version = "dev"
