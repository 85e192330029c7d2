package main

import "github.com/mouse-blink/sortviz/cmd"

func main() {
	cmd.Execute()
}
