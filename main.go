package main

import "composite-tools/cmd"

func main() {
	cmd.Execute()
}
