package main

import "github.com/wsnauth/ltrq/cmd"

func main() {
	cmd.Execute()
}
