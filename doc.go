/*
Package flagen procedurally generates raster images resembling national flags:
a striped background with a single optional geometric emblem composited on top.

The package provides a command line interface, supporting various flags for
batch generation and an interactive preview window. To check the supported
commands type:

	$ flagen --help

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"image/png"
		"os"

		"github.com/esimov/flagen"
	)

	func main() {
		gen := flagen.NewGenerator(42)
		img := gen.RandomFlag(640, 360)

		f, _ := os.Create("flag.png")
		defer f.Close()

		png.Encode(f, img)
	}
*/
package flagen
