package main

import (
	"os"

	"github.com/amical-najul/SumasRestas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
