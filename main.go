package main

import "github.com/michabs/glance/cmd"

func main() {
	cmd.Execute()
}
