// Tincture - A terminal colour theme creator
//
// Tincture extracts colour palettes from images, maps them onto the
// standard terminal colour roles, and exports themes for your favourite
// terminal emulators.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	cli.Execute()
}
