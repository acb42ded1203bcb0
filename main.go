package main

import "github.com/lexenlem/lemrun/cmd"

func main() {
	cmd.Execute()
}
