package main

import "github.com/depscan/depscan/cmd"

func main() {
	cmd.Execute()
}
