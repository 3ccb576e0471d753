package main

import "github.com/san-kum/mandelbench/internal/cli"

// main times a 200x100 scan that accumulates each row into a line.
func main() {
	cli.Execute(cli.NewCommand("mandelbench", "line"))
}
