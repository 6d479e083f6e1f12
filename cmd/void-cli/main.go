package main

import "github.com/nfrund/voidinbox/cmd/void-cli/cmd"

func main() {
	cmd.Execute()
}
