// Package version holds the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
package version

// Version is the released version of the game.
var Version = "dev"
