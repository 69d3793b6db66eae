package web

import "embed"

// FS holds the stylesheets served under /static.
//
//go:embed static/*
var FS embed.FS
