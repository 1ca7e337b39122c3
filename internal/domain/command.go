package domain

import (
	"fmt"
	"strings"
)

type Command string

const (
	CommandStart       Command = "start"
	CommandStop        Command = "stop"
	CommandNextPatient Command = "next"
)

func ParseCommand(raw string) (Command, error) {
	switch command := Command(strings.ToLower(strings.TrimSpace(raw))); command {
	case CommandStart, CommandStop, CommandNextPatient:
		return command, nil
	case "next-patient":
		return CommandNextPatient, nil
	default:
		return "", fmt.Errorf("unknown command %q", raw)
	}
}
