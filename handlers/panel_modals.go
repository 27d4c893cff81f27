package handlers

import (
	"strings"

	"crew-bot/panel"

	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

func (h *Handler) HandleTitleModal(event *handler.ModalEvent) error {
	if !h.Bot.Drafts.Exists(event.User().ID) {
		return event.DeferUpdateMessage()
	}
	title := strings.TrimSpace(event.Data.Text("title"))
	description := strings.TrimSpace(event.Data.Text("description"))
	if title == "" || description == "" {
		return event.CreateMessage(ephemeralMessage("❌ Título e descrição são obrigatórios."))
	}
	if !h.Bot.Drafts.SetTitle(event.User().ID, title, description) {
		return event.DeferUpdateMessage()
	}
	return event.CreateMessage(ephemeralMessage("✅ Título e descrição definidos!"))
}

// colorModalReply resolves a color submission. ok reports whether the draft
// still exists; a submission against a vanished draft is ignored even when
// its token is invalid.
func colorModalReply(drafts *panel.Store, userID snowflake.ID, token string) (string, bool) {
	if !drafts.Exists(userID) {
		return "", false
	}
	color, err := panel.ParseColor(token)
	if err != nil {
		return "❌ " + err.Error(), true
	}
	if !drafts.SetColor(userID, color) {
		return "", false
	}
	return "✅ Cor definida!", true
}

func (h *Handler) HandleColorModal(event *handler.ModalEvent) error {
	reply, ok := colorModalReply(h.Bot.Drafts, event.User().ID, event.Data.Text("color"))
	if !ok {
		return event.DeferUpdateMessage()
	}
	return event.CreateMessage(ephemeralMessage(reply))
}

func (h *Handler) HandleImageModal(event *handler.ModalEvent) error {
	imageURL := strings.TrimSpace(event.Data.Text("image"))
	if !h.Bot.Drafts.SetImage(event.User().ID, imageURL) {
		return event.DeferUpdateMessage()
	}
	if imageURL == "" {
		return event.CreateMessage(ephemeralMessage("✅ Imagem mantida."))
	}
	return event.CreateMessage(ephemeralMessage("✅ Imagem definida!"))
}

func (h *Handler) HandleFieldModal(event *handler.ModalEvent) error {
	if !h.Bot.Drafts.Exists(event.User().ID) {
		return event.DeferUpdateMessage()
	}
	name := strings.TrimSpace(event.Data.Text("name"))
	value := strings.TrimSpace(event.Data.Text("value"))
	if name == "" || value == "" {
		return event.CreateMessage(ephemeralMessage("❌ Nome e valor são obrigatórios."))
	}
	if !h.Bot.Drafts.AddField(event.User().ID, name, value) {
		return event.DeferUpdateMessage()
	}
	return event.CreateMessage(ephemeralMessage("✅ Campo adicionado!"))
}

func (h *Handler) HandleMentionModal(event *handler.ModalEvent) error {
	// the text is stored verbatim; an empty submission clears the mention
	if !h.Bot.Drafts.SetMention(event.User().ID, event.Data.Text("mention")) {
		return event.DeferUpdateMessage()
	}
	return event.CreateMessage(ephemeralMessage("✅ Menção definida!"))
}

// HandlePaymentModal appends a price field. Each submission appends another
// one; the panel has no single price slot.
func (h *Handler) HandlePaymentModal(event *handler.ModalEvent) error {
	if !h.Bot.Drafts.Exists(event.User().ID) {
		return event.DeferUpdateMessage()
	}
	price := strings.TrimSpace(event.Data.Text("price"))
	if price == "" {
		return event.CreateMessage(ephemeralMessage("❌ Informe um valor."))
	}
	if !h.Bot.Drafts.AddField(event.User().ID, panel.PriceFieldName, panel.FormatPrice(price)) {
		return event.DeferUpdateMessage()
	}
	return event.CreateMessage(ephemeralMessage("✅ Preço adicionado!"))
}
