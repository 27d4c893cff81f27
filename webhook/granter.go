package webhook

import (
	"log/slog"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/snowflake/v2"
)

// MemberRoleGranter adds a fixed role to members of a fixed guild, reading
// the member roster from the gateway cache.
type MemberRoleGranter struct {
	client  *bot.Client
	guildID snowflake.ID
	roleID  snowflake.ID
}

func NewMemberRoleGranter(client *bot.Client, guildID snowflake.ID, roleID snowflake.ID) *MemberRoleGranter {
	return &MemberRoleGranter{
		client:  client,
		guildID: guildID,
		roleID:  roleID,
	}
}

func (g *MemberRoleGranter) GrantRole(userID snowflake.ID) error {
	member, ok := g.client.Caches.Member(g.guildID, userID)
	if !ok {
		slog.Warn("webhook: paying user is not a cached guild member", slog.Any("user.id", userID), slog.Any("guild.id", g.guildID))
		return nil
	}
	if err := g.client.Rest.AddMemberRole(g.guildID, member.User.ID, g.roleID); err != nil {
		return err
	}
	slog.Info("webhook: vip role granted", slog.Any("user.id", userID))
	return nil
}
