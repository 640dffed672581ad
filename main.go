package main

import "fragment-loader/cmd"

func main() {
	cmd.Execute()
}
