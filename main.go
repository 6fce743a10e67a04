package main

import "prompt-library/cmd"

func main() {
	cmd.Execute()
}
