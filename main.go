package main

import "github.com/zjrosen/ps1/cmd"

func main() {
	cmd.Execute()
}
