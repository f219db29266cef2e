package main

import "github.com/mouse-blink/ancora/cmd"

func main() {
	cmd.Execute()
}
