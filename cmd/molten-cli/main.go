package main

import "molten/cmd/molten-cli/cmd"

func main() {
	cmd.Execute()
}
