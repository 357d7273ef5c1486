package main

import "kps/cmd"

func main() {
	cmd.Execute()
}
