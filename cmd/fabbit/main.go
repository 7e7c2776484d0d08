package main

import "github.com/fabriclab/fabbit/cmd/fabbit/cmd"

func main() {
	cmd.Execute()
}
