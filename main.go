package main

import "github.com/uacl/build-tools/cmd"

func main() {
	cmd.Execute()
}
