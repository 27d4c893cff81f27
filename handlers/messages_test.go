package handlers

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRaffleCommand(t *testing.T) {
	command, err := parseRaffleCommand(strings.Fields("+sorteio 1 VIP 2 nenhuma"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if command.Quantity != "1" || command.Prize != "VIP" || command.WinnerCount != 2 || command.Condition != "nenhuma" {
		t.Fatalf("unexpected command: %+v", command)
	}
}

func TestParseRaffleCommand_NonNumericWinners(t *testing.T) {
	_, err := parseRaffleCommand(strings.Fields("+sorteio 1 VIP abc nenhuma"))
	if !errors.Is(err, errRaffleUsage) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRaffleCommand_MissingTokens(t *testing.T) {
	for _, content := range []string{
		"+sorteio",
		"+sorteio 1",
		"+sorteio 1 VIP",
		"+sorteio 1 VIP 2",
	} {
		if _, err := parseRaffleCommand(strings.Fields(content)); !errors.Is(err, errRaffleUsage) {
			t.Fatalf("%q should be a usage error, got %v", content, err)
		}
	}
}
