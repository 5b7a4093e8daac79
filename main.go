package main

import "github.com/mtang/cursor-insight/cmd"

func main() {
	cmd.Execute()
}
