package internal

import (
	"crew-bot/panel"
	"crew-bot/payment"
	"crew-bot/raffle"
)

type Bot struct {
	Raffles  *raffle.Store
	Drafts   *panel.Store
	Payments *payment.Client
}
