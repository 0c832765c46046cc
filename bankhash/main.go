package main

import "github.com/sarchlab/bankhash/bankhash/cmd"

func main() {
	cmd.Execute()
}
