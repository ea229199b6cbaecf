package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storefront/internal/models"
)

// TelegramNotifier pushes order events to an admin chat. A nil notifier
// is safe to call and does nothing.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier returns nil when the token is empty, so callers
// can wire it unconditionally.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	if token == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[notify][telegram] init failed: %v", err)
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (n *TelegramNotifier) NotifyNewOrder(order *models.Order) {
	if n == nil {
		return
	}
	text := fmt.Sprintf(
		"New order %s\nItems: %d\nTotal: %.2f\nPayment: %s",
		order.OrderNumber, len(order.Items), order.TotalAmount, order.PaymentStatus,
	)
	go n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[notify][telegram] send failed: %v", err)
	}
}
