package main

import (
	"github.com/Veridise/llzk-go/pkg/cmd"
)

func main() {
	cmd.Execute()
}
