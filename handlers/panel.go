package handlers

import (
	"crew-bot/panel"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// panelModal builds the form shown by a panel button. Inputs are matched by
// custom ID in the corresponding modal handler.
func panelModal(customID string, title string, inputs ...discord.TextInputComponent) discord.ModalCreate {
	components := make([]discord.LayoutComponent, 0, len(inputs))
	for _, input := range inputs {
		components = append(components, discord.NewActionRow(input))
	}
	return discord.ModalCreate{
		CustomID:   customID,
		Title:      title,
		Components: components,
	}
}

// openDraftModal ignores clicks on panels whose draft is gone (stale UI).
func (h *Handler) openDraftModal(event *handler.ComponentEvent, modal discord.ModalCreate) error {
	if !h.Bot.Drafts.Exists(event.User().ID) {
		return event.DeferUpdateMessage()
	}
	return event.Modal(modal)
}

func (h *Handler) HandleSetTitleButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalTitle, "Título & Descrição",
		discord.NewTextInput("title", discord.TextInputStyleShort, "Título").WithRequired(true),
		discord.NewTextInput("description", discord.TextInputStyleParagraph, "Descrição").WithRequired(true),
	))
}

func (h *Handler) HandleSetColorButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalColor, "Cor do Embed",
		discord.NewTextInput("color", discord.TextInputStyleShort, "Cor (hex)").
			WithRequired(true).
			WithPlaceholder("#5865F2"),
	))
}

func (h *Handler) HandleSetImageButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalImage, "Imagem do Embed",
		discord.NewTextInput("image", discord.TextInputStyleShort, "URL da imagem").
			WithRequired(false).
			WithPlaceholder("https://..."),
	))
}

func (h *Handler) HandleAddFieldButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalField, "Adicionar Campo",
		discord.NewTextInput("name", discord.TextInputStyleShort, "Nome").WithRequired(true),
		discord.NewTextInput("value", discord.TextInputStyleParagraph, "Valor").WithRequired(true),
	))
}

func (h *Handler) HandleSetMentionButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalMention, "Mencionar",
		discord.NewTextInput("mention", discord.TextInputStyleShort, "Menção").
			WithRequired(false).
			WithPlaceholder("@everyone, <@&id>... vazio para limpar"),
	))
}

func (h *Handler) HandleSetPaymentButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	return h.openDraftModal(event, panelModal(modalPayment, "Preço",
		discord.NewTextInput("price", discord.TextInputStyleShort, "Valor").
			WithRequired(true).
			WithPlaceholder("25,90"),
	))
}

func (h *Handler) HandleRemoveField(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	switch h.Bot.Drafts.RemoveField(event.User().ID) {
	case panel.RemoveEmpty:
		return event.CreateMessage(ephemeralMessage("❌ Não há campos para remover."))
	case panel.RemoveDone:
		draft, ok := h.Bot.Drafts.Snapshot(event.User().ID)
		if !ok {
			return event.DeferUpdateMessage()
		}
		// show the updated preview alongside the ack
		return event.CreateMessage(discord.NewMessageCreateBuilder().
			SetContent("✅ Último campo removido!").
			SetEmbeds(draft.Embed()).
			SetEphemeral(true).
			Build())
	default:
		return event.DeferUpdateMessage()
	}
}

// HandlePreviewSend publishes the draft publicly. The draft stays intact,
// so the panel can publish again.
func (h *Handler) HandlePreviewSend(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	draft, ok := h.Bot.Drafts.Snapshot(event.User().ID)
	if !ok {
		return event.DeferUpdateMessage()
	}
	messageBuilder := discord.NewMessageCreateBuilder().SetEmbeds(draft.Embed())
	if draft.Mention != "" {
		messageBuilder.SetContent(draft.Mention)
	}
	return event.CreateMessage(messageBuilder.Build())
}
