package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"predictbot/internal/locales"
	"predictbot/pkg/telegoapi"

	"github.com/mymmrac/telego"
)

// HandleCallbackQuery processes inline keyboard callbacks: the "next
// prediction" button and the language selection buttons. The query is always
// acknowledged so the button stops its loading indicator.
func (h *MessageHandler) HandleCallbackQuery(ctx context.Context, bot telegoapi.BotAPI, query telego.CallbackQuery) error {
	ackParams := &telego.AnswerCallbackQueryParams{CallbackQueryID: query.ID}
	if err := bot.AnswerCallbackQuery(ctx, ackParams); err != nil {
		log.Printf("Error answering callback query %s: %v", query.ID, err)
	}

	if query.Message == nil {
		log.Printf("[Callback User:%d] Query %s has no originating message, ignoring", query.From.ID, query.ID)
		return nil
	}
	chatID := query.Message.GetChat().ID

	switch {
	case query.Data == CallbackNextPrediction:
		return h.sendPrediction(ctx, bot, chatID, query.From.ID)

	case strings.HasPrefix(query.Data, languageCallbackPrefix):
		return h.handleLanguageSelection(ctx, bot, chatID, query.From.ID, strings.TrimPrefix(query.Data, languageCallbackPrefix))

	default:
		log.Printf("[Callback User:%d] Unhandled callback data %q", query.From.ID, query.Data)
		return nil
	}
}

// handleLanguageSelection completes the /lng flow. The selection is only
// honored while the chat is in the awaiting state; stale button presses are
// ignored.
func (h *MessageHandler) handleLanguageSelection(ctx context.Context, bot telegoapi.BotAPI, chatID, userID int64, code string) error {
	if h.GetChatState(chatID) != StateAwaitingLanguage {
		log.Printf("[Callback User:%d] Language selection %q outside /lng flow, ignoring", userID, code)
		return nil
	}
	if !locales.IsSupported(code) {
		log.Printf("[Callback User:%d] Unsupported language code %q", userID, code)
		return nil
	}

	if err := h.subscribers.SetLanguage(ctx, userID, code); err != nil {
		localizer := h.LocalizerFor(ctx, userID)
		return h.sendError(ctx, bot, chatID, localizer, fmt.Errorf("failed to store language %q for user %d: %w", code, userID, err))
	}
	h.setChatState(chatID, StateIdle)

	// Confirm in the language the user just picked.
	localizer := locales.NewLocalizer(code)
	confirmation := locales.GetMessage(localizer, "MsgLanguageUpdated", map[string]interface{}{
		"Language": locales.LanguageName(code),
	})
	return h.sendSuccess(ctx, bot, chatID, confirmation)
}
