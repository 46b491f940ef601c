package main

import "github.com/minimartlabs/minimart/cmd"

func main() {
	cmd.Start()
}
