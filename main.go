package main

import "github.com/virus-evolution/goconserve/cmd"

func main() {
	cmd.Execute()
}
