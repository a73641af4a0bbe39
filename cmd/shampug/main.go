package main

import (
	"github.com/NVIDIA/shampug/pkg/cli"
)

func main() {
	cli.Execute()
}
