package main

import "github.com/Alireza01sjd/project-god-mode/cmd/cli/command"

func main() {
	command.Execute()
}
