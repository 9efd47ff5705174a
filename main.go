package main

import "github.com/ArchitCodes1204/campus-delivery-platform/cmd"

func main() {
	cmd.Execute()
}
