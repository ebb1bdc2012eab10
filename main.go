package main

import (
	"os"

	"github.com/talentflow/interview-assist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
