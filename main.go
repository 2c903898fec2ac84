package main

import "github.com/notargets/oberth/cmd"

func main() {
	cmd.Execute()
}
