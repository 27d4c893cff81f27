package panel

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
)

const userID = snowflake.ID(42)

func TestOpen_ReplacesExistingDraft(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.SetTitle(userID, "Atualização", "Novidades do servidor")

	store.Open(userID)
	draft, ok := store.Snapshot(userID)
	if !ok {
		t.Fatal("draft should exist after reopening")
	}
	if draft.Title != "" || draft.Description != "" {
		t.Fatalf("reopening should start a fresh draft, got %+v", draft)
	}
}

func TestMutations_WithoutDraft(t *testing.T) {
	store := NewStore()
	if store.SetTitle(userID, "a", "b") {
		t.Fatal("SetTitle without a draft should report false")
	}
	if store.SetColor(userID, 0x5865F2) {
		t.Fatal("SetColor without a draft should report false")
	}
	if outcome := store.RemoveField(userID); outcome != RemoveUnknown {
		t.Fatalf("RemoveField without a draft: got=%d want=%d", outcome, RemoveUnknown)
	}
	if _, ok := store.Snapshot(userID); ok {
		t.Fatal("Snapshot without a draft should report !ok")
	}
}

func TestSetImage_EmptyKeepsCurrent(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.SetImage(userID, "https://example.com/banner.png")
	store.SetImage(userID, "")

	draft, _ := store.Snapshot(userID)
	if draft.ImageURL != "https://example.com/banner.png" {
		t.Fatalf("empty input should keep the image, got %q", draft.ImageURL)
	}
}

func TestFields_AddAndRemoveLast(t *testing.T) {
	store := NewStore()
	store.Open(userID)

	if outcome := store.RemoveField(userID); outcome != RemoveEmpty {
		t.Fatalf("RemoveField on an empty draft: got=%d want=%d", outcome, RemoveEmpty)
	}

	store.AddField(userID, "Primeiro", "1")
	store.AddField(userID, "Segundo", "2")
	if outcome := store.RemoveField(userID); outcome != RemoveDone {
		t.Fatalf("RemoveField: got=%d want=%d", outcome, RemoveDone)
	}

	draft, _ := store.Snapshot(userID)
	if len(draft.Fields) != 1 || draft.Fields[0].Name != "Primeiro" {
		t.Fatalf("the last-added field should be removed, got %+v", draft.Fields)
	}
}

func TestEmbed_ReflectsFieldRemoval(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.SetTitle(userID, "Atualização", "Novidades")
	store.AddField(userID, "Primeiro", "1")
	store.AddField(userID, "Segundo", "2")
	store.RemoveField(userID)

	draft, _ := store.Snapshot(userID)
	embed := draft.Embed()
	if embed.Title != "Atualização" {
		t.Fatalf("unexpected embed title: %q", embed.Title)
	}
	if len(embed.Fields) != 1 || embed.Fields[0].Name != "Primeiro" {
		t.Fatalf("embed should render the remaining field, got %+v", embed.Fields)
	}
}

func TestSetMention_EmptyClears(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.SetMention(userID, "@everyone")
	store.SetMention(userID, "")

	draft, _ := store.Snapshot(userID)
	if draft.Mention != "" {
		t.Fatalf("empty mention should clear, got %q", draft.Mention)
	}
}

func TestSnapshot_IsolatedFromStore(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.AddField(userID, "Campo", "valor")

	snapshot, _ := store.Snapshot(userID)
	snapshot.Fields[0].Name = "mudado"

	draft, _ := store.Snapshot(userID)
	if draft.Fields[0].Name != "Campo" {
		t.Fatalf("snapshot mutation leaked into the store: %+v", draft.Fields)
	}
}

func TestSnapshot_DoesNotConsumeDraft(t *testing.T) {
	store := NewStore()
	store.Open(userID)
	store.SetTitle(userID, "Atualização", "Novidades")

	for range 2 {
		draft, ok := store.Snapshot(userID)
		if !ok || draft.Title != "Atualização" {
			t.Fatalf("snapshot should be repeatable, got ok=%t draft=%+v", ok, draft)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{token: "#5865F2", want: 0x5865F2},
		{token: "0x5865F2", want: 0x5865F2},
		{token: "5865f2", want: 0x5865F2},
		{token: " FFFFFF ", want: 0xFFFFFF},
		{token: "azul", wantErr: true},
		{token: "", wantErr: true},
		{token: "1FFFFFF", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseColor(%q) should fail", tt.token)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tt.token, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q): got=%#x want=%#x", tt.token, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(" 25,90 "); got != "R$ 25,90" {
		t.Fatalf("unexpected price text: %q", got)
	}
}
