package main

import "github.com/hmans/boards/cmd"

func main() {
	cmd.Execute()
}
