package gominutes

// Set with -ldflags on release builds.
var Version = "0.1.0"
