package main

import "reelcritic/cmd/cli/command"

func main() {
	command.Execute()
}
