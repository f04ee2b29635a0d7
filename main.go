package main

import "github.com/CJHwong/git-msg/cmd"

func main() {
	cmd.Execute()
}
