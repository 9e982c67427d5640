package core

// Version of the indexer. Overridden at build time via -ldflags.
var Version = "1.0.0"
