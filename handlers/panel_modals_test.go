package handlers

import (
	"testing"

	"crew-bot/panel"

	"github.com/disgoorg/snowflake/v2"
)

const draftUserID = snowflake.ID(42)

func TestColorModalReply_StaleDraftIgnoredOverValidation(t *testing.T) {
	drafts := panel.NewStore()
	if _, ok := colorModalReply(drafts, draftUserID, "azul"); ok {
		t.Fatal("a submission without a draft should be ignored, even with a bad token")
	}
}

func TestColorModalReply_InvalidToken(t *testing.T) {
	drafts := panel.NewStore()
	drafts.Open(draftUserID)

	reply, ok := colorModalReply(drafts, draftUserID, "azul")
	if !ok {
		t.Fatal("a live draft should be answered")
	}
	if reply != `❌ cor inválida: "azul"` {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestColorModalReply_SetsColor(t *testing.T) {
	drafts := panel.NewStore()
	drafts.Open(draftUserID)

	reply, ok := colorModalReply(drafts, draftUserID, "#5865F2")
	if !ok || reply != "✅ Cor definida!" {
		t.Fatalf("unexpected reply: ok=%t reply=%q", ok, reply)
	}
	draft, _ := drafts.Snapshot(draftUserID)
	if draft.Color != 0x5865F2 {
		t.Fatalf("unexpected color: %#x", draft.Color)
	}
}
