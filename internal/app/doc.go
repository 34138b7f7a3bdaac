// Package app contains the core application logic. It defines the App
// struct, its configuration and the load-and-render lifecycle, decoupled
// from any specific entrypoint like a CLI.
package app
