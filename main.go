package main

import "dressify/cmd"

func main() {
	cmd.Execute()
}
