package services

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService pushes operational notifications (created/approved identities)
// to a single ops chat. Fully optional: a nil service or empty token is a no-op.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init] bot unavailable, notifications disabled: err=%v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: chatID}
}

// Notify is fire-and-forget: transport errors are logged, never returned.
func (t *TelegramService) Notify(text string) {
	if t == nil || t.bot == nil {
		return
	}
	go func() {
		msg := tgbotapi.NewMessage(t.chatID, text)
		if _, err := t.bot.Send(msg); err != nil {
			log.Printf("[tg][send] failed: err=%v", err)
		}
	}()
}
