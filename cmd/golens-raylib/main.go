package main

import "github.com/philipparndt/golens/cmd"

func main() {
	cmd.Execute()
}
