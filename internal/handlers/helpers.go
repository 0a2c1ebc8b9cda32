package handlers

import (
	"context"
	"log"
	"net/url"

	"predictbot/internal/locales"
	"predictbot/pkg/telegoapi"

	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// sendSuccess sends a reply message to the user.
func (h *MessageHandler) sendSuccess(ctx context.Context, bot telegoapi.BotAPI, chatID int64, text string) error {
	_, err := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
		// Don't return error to user, just log it.
	}
	return nil
}

// sendError sends a generic localized error message to the user and returns
// the original error for the dispatch loop to report.
func (h *MessageHandler) sendError(ctx context.Context, bot telegoapi.BotAPI, chatID int64, localizer *i18n.Localizer, originalErr error) error {
	log.Printf("Error for user in chat %d: %v", chatID, originalErr)

	errMsg := locales.GetMessage(localizer, "MsgErrorGeneral", nil)
	if _, sendErr := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), errMsg)); sendErr != nil {
		log.Printf("Error sending generic error message to chat %d: %v", chatID, sendErr)
	}
	return originalErr
}

// LocalizerFor builds a localizer from the user's stored language preference.
// Lookup failures fall back to the default language.
func (h *MessageHandler) LocalizerFor(ctx context.Context, userID int64) *i18n.Localizer {
	lang, err := h.subscribers.GetLanguage(ctx, userID)
	if err != nil {
		log.Printf("Error loading language for user %d: %v. Using default.", userID, err)
		lang = locales.DefaultLanguageCode()
	}
	return locales.NewLocalizer(lang)
}

// validLink reports whether raw is an absolute http(s) URL with a host.
// Rejecting anything else keeps the stored links renderable as buttons.
func validLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
