package main

import (
	"os"

	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/colors"
)

func main() {
	err := cmd.Execute()
	closeServices()
	if err != nil {
		colors.Trace{Component: "cli", Action: "execute", Err: err}.Emit()
		os.Exit(1)
	}
}
