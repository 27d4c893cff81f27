package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/lmittmann/tint"
)

const raffleUsageMessage = "❌ Use: `+sorteio <quantidade> <tipo> <vencedores> <condição>`"

var errRaffleUsage = errors.New("malformed +sorteio command")

type raffleCommand struct {
	Quantity    string
	Prize       string
	WinnerCount int
	Condition   string
}

func parseRaffleCommand(args []string) (raffleCommand, error) {
	if len(args) < 5 {
		return raffleCommand{}, errRaffleUsage
	}
	winnerCount, err := strconv.Atoi(args[3])
	if err != nil {
		return raffleCommand{}, errRaffleUsage
	}
	return raffleCommand{
		Quantity:    args[1],
		Prize:       args[2],
		WinnerCount: winnerCount,
		Condition:   args[4],
	}, nil
}

func (h *Handler) OnMessageCreate(ev *events.GuildMessageCreate) {
	message := ev.Message
	if message.Author.Bot {
		return
	}
	if strings.EqualFold(strings.TrimSpace(message.Content), "+painel") {
		h.openPanel(ev)
		return
	}
	args := strings.Fields(message.Content)
	if len(args) != 0 && args[0] == "+sorteio" {
		h.startRaffle(ev, args)
	}
}

func (h *Handler) openPanel(ev *events.GuildMessageCreate) {
	h.Bot.Drafts.Open(ev.Message.Author.ID)

	row1 := discord.NewActionRow(
		discord.NewButton(discord.ButtonStylePrimary, "Título & Descrição", componentSetTitle, "", 0),
		discord.NewButton(discord.ButtonStyleSecondary, "Cor", componentSetColor, "", 0),
		discord.NewButton(discord.ButtonStyleSuccess, "Imagem", componentSetImage, "", 0),
		discord.NewButton(discord.ButtonStyleSecondary, "Adicionar Campo", componentAddField, "", 0),
		discord.NewButton(discord.ButtonStylePrimary, "Mencionar @", componentSetMention, "", 0),
	)
	row2 := discord.NewActionRow(
		discord.NewButton(discord.ButtonStyleSuccess, "Preço", componentSetPayment, "", 0),
		discord.NewButton(discord.ButtonStyleSecondary, "Remover Campo", componentRemoveField, "", 0),
		discord.NewButton(discord.ButtonStyleDanger, "Preview & Enviar", componentPreviewSend, "", 0),
	)

	if _, err := ev.Client().Rest.CreateMessage(ev.ChannelID, discord.NewMessageCreateBuilder().
		SetContent("🛠️ **Painel de Atualização do Servidor**").
		AddComponents(row1, row2).
		Build()); err != nil {
		slog.Error("panel: error while sending the panel message", slog.Any("channel.id", ev.ChannelID), tint.Err(err))
	}
}

func (h *Handler) startRaffle(ev *events.GuildMessageCreate, args []string) {
	rest := ev.Client().Rest
	command, err := parseRaffleCommand(args)
	if err != nil {
		if _, err := rest.CreateMessage(ev.ChannelID, discord.NewMessageCreateBuilder().
			SetContent(raffleUsageMessage).
			SetMessageReferenceByID(ev.MessageID).
			SetAllowedMentions(&discord.AllowedMentions{}).
			Build()); err != nil {
			slog.Error("raffle: error while sending a usage reply", slog.Any("channel.id", ev.ChannelID), tint.Err(err))
		}
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("🎉 Sorteio iniciado!").
		SetDescriptionf("🎁 **Prêmio:** %s %s\n🏆 **Vencedores:** %d\n📌 **Condição:** %s",
			command.Quantity, command.Prize, command.WinnerCount, command.Condition).
		SetColor(0x5865F2).
		SetTimestamp(time.Now()).
		Build()
	row := discord.NewActionRow(
		discord.NewButton(discord.ButtonStyleSuccess, "🎉 Participar", componentRaffleJoin, "", 0),
		discord.NewButton(discord.ButtonStyleDanger, "🎯 Sortear", componentRaffleDraw, "", 0),
	)

	announcement, err := rest.CreateMessage(ev.ChannelID, discord.NewMessageCreateBuilder().
		SetContentf("<@&%s>", h.Config.CrewRoleID).
		SetEmbeds(embed).
		AddComponents(row).
		Build())
	if err != nil {
		slog.Error("raffle: error while sending the announcement", slog.Any("channel.id", ev.ChannelID), tint.Err(err))
		return
	}
	h.Bot.Raffles.Create(announcement.ID, command.WinnerCount)
}
