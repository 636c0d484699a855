package main

import "github.com/FernBytes/sheetnorm-cli/cmd"

func main() {
	cmd.Execute()
}
