package main

import "github.com/mj1618/zommation/cmd"

func main() {
	cmd.Execute()
}
