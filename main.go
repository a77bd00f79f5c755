package main

import "extension-devserver/cmd"

func main() {
	cmd.Execute()
}
