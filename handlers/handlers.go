package handlers

import (
	"log/slog"

	"crew-bot/internal"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

// Component custom IDs form a closed set; every ID posted on a message has
// a route below, so a typo fails at registration instead of silently.
const (
	componentRaffleJoin  = "/participar_sorteio"
	componentRaffleDraw  = "/sortear_sorteio"
	componentSetTitle    = "/set_title"
	componentSetColor    = "/set_color"
	componentSetImage    = "/set_image"
	componentAddField    = "/add_field"
	componentRemoveField = "/remove_field"
	componentSetMention  = "/set_mention"
	componentSetPayment  = "/set_payment"
	componentPreviewSend = "/preview_send"

	modalTitle   = "/modal_title"
	modalColor   = "/modal_color"
	modalImage   = "/modal_image"
	modalField   = "/modal_field"
	modalMention = "/modal_mention"
	modalPayment = "/modal_payment"
)

const genericFailureMessage = "❌ Ocorreu um erro ao processar a ação."

func NewHandler(b *internal.Bot, c *internal.Config) *Handler {
	mux := handler.New()
	mux.Error(func(e *handler.InteractionEvent, err error) {
		slog.Error("there was an error while handling an interaction", slog.Any("interaction.type", e.Interaction.Type()), tint.Err(err))
		_ = e.Respond(discord.InteractionResponseTypeCreateMessage, discord.NewMessageCreateBuilder().
			SetContent(genericFailureMessage).
			SetEphemeral(true).
			Build())
	})
	h := &Handler{
		Bot:    b,
		Config: c,
		Router: mux,
	}
	h.Group(func(r handler.Router) {
		r.ButtonComponent(componentRaffleJoin, h.HandleRaffleJoin)
		r.ButtonComponent(componentRaffleDraw, h.HandleRaffleDraw)
	})
	h.Group(func(r handler.Router) {
		r.ButtonComponent(componentSetTitle, h.HandleSetTitleButton)
		r.ButtonComponent(componentSetColor, h.HandleSetColorButton)
		r.ButtonComponent(componentSetImage, h.HandleSetImageButton)
		r.ButtonComponent(componentAddField, h.HandleAddFieldButton)
		r.ButtonComponent(componentSetMention, h.HandleSetMentionButton)
		r.ButtonComponent(componentSetPayment, h.HandleSetPaymentButton)
		r.ButtonComponent(componentRemoveField, h.HandleRemoveField)
		r.ButtonComponent(componentPreviewSend, h.HandlePreviewSend)
		r.Modal(modalTitle, h.HandleTitleModal)
		r.Modal(modalColor, h.HandleColorModal)
		r.Modal(modalImage, h.HandleImageModal)
		r.Modal(modalField, h.HandleFieldModal)
		r.Modal(modalMention, h.HandleMentionModal)
		r.Modal(modalPayment, h.HandlePaymentModal)
	})
	return h
}

type Handler struct {
	Bot    *internal.Bot
	Config *internal.Config
	handler.Router
}

func ephemeralMessage(content string) discord.MessageCreate {
	return discord.NewMessageCreateBuilder().
		SetContent(content).
		SetEphemeral(true).
		Build()
}
