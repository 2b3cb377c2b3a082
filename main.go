package main

import "github.com/fintrackbot/fintrack/cmd"

func main() {
	cmd.Execute()
}
