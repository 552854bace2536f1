package main

import "ink-and-realm/cmd"

func main() {
	cmd.Execute()
}
