// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go` and booted by the server
// under their own route group at startup.
package modules
