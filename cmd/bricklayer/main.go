package main

import "github.com/kesling/bricklayer/cmd/bricklayer/cmd"

func main() {
	cmd.Execute()
}
