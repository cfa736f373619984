package main

import "MathBoard/cmd"

func main() {
	cmd.Execute()
}
