package main

import (
	"log"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
