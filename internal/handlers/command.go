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

// HandleStart handles the /start command.
// It registers the chat as a subscriber, sets up the bot command menu and
// sends the localized welcome. Admins additionally receive the admin help block.
func (h *MessageHandler) HandleStart(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	userID := message.From.ID

	if err := h.subscribers.Register(ctx, userID); err != nil {
		localizer := locales.NewLocalizer(locales.DefaultLanguageCode())
		return h.sendError(ctx, bot, message.Chat.ID, localizer, fmt.Errorf("failed to register subscriber %d: %w", userID, err))
	}

	if err := h.setupCommands(ctx, bot); err != nil {
		// The menu is cosmetic; the welcome must still go out.
		log.Printf("[Cmd:start User:%d] Failed to set up command menu: %v", userID, err)
	}

	localizer := h.LocalizerFor(ctx, userID)
	if err := h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgStart", nil)); err != nil {
		return err
	}
	if h.adminChecker.IsAdmin(userID) {
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgStartAdmin", nil))
	}
	return nil
}

// HandlePredict handles the /predict command.
// The sender is registered if absent so that "predict first, start later"
// users still receive broadcasts.
func (h *MessageHandler) HandlePredict(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	userID := message.From.ID
	if err := h.subscribers.Register(ctx, userID); err != nil {
		log.Printf("[Cmd:predict User:%d] Failed to register subscriber: %v", userID, err)
	}
	return h.sendPrediction(ctx, bot, message.Chat.ID, userID)
}

// HandleLanguage handles the /lng command. It moves the chat into the
// awaiting-selection state and shows the language keyboard.
func (h *MessageHandler) HandleLanguage(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	userID := message.From.ID
	localizer := h.LocalizerFor(ctx, userID)

	h.setChatState(message.Chat.ID, StateAwaitingLanguage)

	params := telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: message.Chat.ID},
		Text:        locales.GetMessage(localizer, "MsgLanguagePrompt", nil),
		ReplyMarkup: languageKeyboard(),
	}
	if _, err := bot.SendMessage(ctx, &params); err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, localizer, fmt.Errorf("failed to send language prompt: %w", err))
	}
	return nil
}

// HandleBroadcast handles the admin-only /broadcast command. Delivery is
// delegated to the dispatcher; the final sent/failed report goes to the
// issuing admin and, as a courtesy, to the other configured admins.
func (h *MessageHandler) HandleBroadcast(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	userID := message.From.ID
	localizer := h.LocalizerFor(ctx, userID)

	if !h.adminChecker.IsAdmin(userID) {
		log.Printf("[Cmd:broadcast User:%d] Permission denied", userID)
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgErrorAdminOnly", nil))
	}

	text := commandArgs(message.Text)
	if text == "" {
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgBroadcastUsage", nil))
	}

	recipients, err := h.subscribers.List(ctx)
	if err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, localizer, fmt.Errorf("failed to list subscribers: %w", err))
	}
	if len(recipients) == 0 {
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgBroadcastNone", nil))
	}

	sent, failed := h.dispatcher.Send(ctx, recipients, text)
	log.Printf("[Cmd:broadcast User:%d] Delivered to %d subscriber(s), %d failed", userID, sent, failed)

	report := locales.GetMessage(localizer, "MsgBroadcastDone", map[string]interface{}{
		"Sent":   sent,
		"Failed": failed,
	})
	if err := h.sendSuccess(ctx, bot, message.Chat.ID, report); err != nil {
		return err
	}

	for _, adminID := range h.adminChecker.Admins() {
		if adminID == userID {
			continue
		}
		if err := h.sendSuccess(ctx, bot, adminID, report); err != nil {
			log.Printf("[Cmd:broadcast] Failed to notify admin %d: %v", adminID, err)
		}
	}
	return nil
}

// HandleSetLink handles the admin-only /setlink command.
func (h *MessageHandler) HandleSetLink(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.handleSetURL(ctx, bot, message, "setlink", h.settings.SetAffiliate, "MsgSetLinkUsage", "MsgSetLinkDone")
}

// HandleSetContact handles the admin-only /setcontact command.
func (h *MessageHandler) HandleSetContact(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.handleSetURL(ctx, bot, message, "setcontact", h.settings.SetContact, "MsgSetContactUsage", "MsgSetContactDone")
}

// handleSetURL implements the shared admin-gate/validate/store flow behind
// /setlink and /setcontact. An empty or malformed URL is rejected with the
// usage message and leaves the stored value untouched.
func (h *MessageHandler) handleSetURL(
	ctx context.Context,
	bot telegoapi.BotAPI,
	message telego.Message,
	name string,
	store func(context.Context, string) error,
	usageKey, doneKey string,
) error {
	userID := message.From.ID
	localizer := h.LocalizerFor(ctx, userID)

	if !h.adminChecker.IsAdmin(userID) {
		log.Printf("[Cmd:%s User:%d] Permission denied", name, userID)
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgErrorAdminOnly", nil))
	}

	link := commandArgs(message.Text)
	if !validLink(link) {
		log.Printf("[Cmd:%s User:%d] Rejected invalid link %q", name, userID, link)
		return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, usageKey, nil))
	}

	if err := store(ctx, link); err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, localizer, fmt.Errorf("failed to store %s value: %w", name, err))
	}
	return h.sendSuccess(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, doneKey, nil))
}

// commandArgs returns the text after the command keyword, e.g.
// "/broadcast hello world" -> "hello world".
func commandArgs(text string) string {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// setupCommands registers the bot's command menu with Telegram, localizing
// the descriptions in the default language.
func (h *MessageHandler) setupCommands(ctx context.Context, bot telegoapi.BotAPI) error {
	if len(h.commands) == 0 {
		return nil
	}

	localizer := locales.NewLocalizer(locales.DefaultLanguageCode())
	commands := make([]telego.BotCommand, 0, len(h.commands))
	for _, cmd := range h.commands {
		commands = append(commands, telego.BotCommand{
			Command:     cmd.Command,
			Description: locales.GetMessage(localizer, cmd.Description, nil),
		})
	}

	err := bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: commands})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	return nil
}
