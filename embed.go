package clinic

import "embed"

// Content holds the site copy and the article catalog.
//
//go:embed content/*.yaml
var Content embed.FS

// EmbeddedAssets holds scripts shipped with the binary: motion.js, the
// browser player for the motion manifest.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
