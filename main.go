package main

import "webhook-relay/cmd"

func main() {
	cmd.Execute()
}
