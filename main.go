package main

import "github.com/robmorgan/pulse/cmd"

func main() {
	cmd.Execute()
}
