package main

import (
	"github.com/tutils/tkey/cmd"
)

func main() {
	cmd.Execute()
}
