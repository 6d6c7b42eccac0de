package main

import "github.com/erondiel/pattern-generator/cmd/patgen/cmd"

func main() {
	cmd.Execute()
}
