package main

import "github.com/bloodmagesoftware/sectorcast/cmd"

func main() {
	cmd.Execute()
}
