package main

import "github.com/nfrund/profileview/cmd/profileview/cmd"

func main() {
	cmd.Execute()
}
