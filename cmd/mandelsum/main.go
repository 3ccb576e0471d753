package main

import "github.com/san-kum/mandelbench/internal/cli"

// main times a 200x100 scan that sums every display value.
func main() {
	cli.Execute(cli.NewCommand("mandelsum", "sum"))
}
