package main

import "github.com/quillon/companyscope/cmd"

func main() {
	cmd.Execute()
}
