// Package buildinfo holds values fixed at build time.
package buildinfo

// Version can be overridden with
// -ldflags "-X eks-go-app/internal/buildinfo.Version=1.2.3".
var Version = "0.1.0"
