package main

import "a11ylint/src/handler/cli"

func main() {
	cli.Run()
}
