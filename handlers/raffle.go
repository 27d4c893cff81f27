package handlers

import (
	"slices"
	"strings"

	"crew-bot/internal"
	"crew-bot/raffle"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
)

func (h *Handler) HandleRaffleJoin(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	switch h.Bot.Raffles.Signup(event.Message.ID, event.User().ID) {
	case raffle.SignupAlreadyJoined:
		return event.CreateMessage(ephemeralMessage("⚠️ Você já está participando!"))
	case raffle.SignupJoined:
		return event.CreateMessage(ephemeralMessage("✅ Participação confirmada!"))
	default:
		// the raffle has already been drawn; ack the stale click silently
		return event.DeferUpdateMessage()
	}
}

func (h *Handler) HandleRaffleDraw(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	messageID := event.Message.ID
	_, participants, ok := h.Bot.Raffles.Lookup(messageID)
	if !ok {
		return event.DeferUpdateMessage()
	}
	if !h.memberMayDraw(event) {
		return event.CreateMessage(ephemeralMessage("❌ Você não tem permissão para sortear."))
	}
	if participants == 0 {
		return event.CreateMessage(ephemeralMessage("❌ Ninguém está participando do sorteio!"))
	}

	// strip the buttons before consuming the entry; if the edit fails the
	// raffle stays open
	channelID := event.Channel().ID()
	if _, err := event.Client().Rest.UpdateMessage(channelID, messageID, discord.MessageUpdate{
		Components: json.Ptr([]discord.LayoutComponent{}),
	}); err != nil {
		return err
	}

	winners, ok := h.Bot.Raffles.Draw(messageID)
	if !ok {
		return event.DeferUpdateMessage()
	}

	mentions := make([]string, 0, len(winners))
	for _, winner := range winners {
		mentions = append(mentions, discord.UserMention(winner))
	}
	return event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContentf("🎉 **VENCEDORES:**\n%s", strings.Join(mentions, "\n")).
		Build())
}

func (h *Handler) memberMayDraw(event *handler.ComponentEvent) bool {
	member := event.Member()
	if member == nil {
		return !h.Config.RequirePrivilegedDraw
	}
	var ownerID snowflake.ID
	if guildID := event.GuildID(); guildID != nil {
		if guild, ok := event.Client().Caches.Guild(*guildID); ok {
			ownerID = guild.OwnerID
		}
	}
	return canDraw(h.Config, ownerID, member.User.ID, member.RoleIDs)
}

// canDraw decides the draw button. With the gate off anyone may draw;
// otherwise only the guild owner and holders of the configured role.
func canDraw(cfg *internal.Config, ownerID snowflake.ID, memberID snowflake.ID, roleIDs []snowflake.ID) bool {
	if !cfg.RequirePrivilegedDraw {
		return true
	}
	if memberID == ownerID {
		return true
	}
	return slices.Contains(roleIDs, cfg.DrawRoleID)
}
