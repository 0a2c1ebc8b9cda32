package handlers

import (
	"context"
	"log"
	"sync"

	"predictbot/internal/auth"
	"predictbot/internal/database"
	"predictbot/internal/images"
	"predictbot/pkg/telegoapi"

	"github.com/mymmrac/telego"
)

// Callback data values used by the inline keyboards.
const (
	CallbackNextPrediction = "next_prediction"
	// languageCallbackPrefix precedes the selected language code, e.g. "set_lang:es".
	languageCallbackPrefix = "set_lang:"
)

// ChatState models the minimal per-chat interaction state. The only
// multi-step flow is /lng: the prompt moves the chat to
// StateAwaitingLanguage and the selection callback moves it back.
type ChatState int

const (
	StateIdle ChatState = iota
	StateAwaitingLanguage
)

// Broadcaster fans a message out to many recipients and reports how many
// sends succeeded and failed.
type Broadcaster interface {
	Send(ctx context.Context, recipients []int64, text string) (sent int, failed int)
}

// Command represents a bot command, mapping the command string to its
// description key and handler function.
type Command struct {
	Command     string                                                       // The command string (e.g., "start").
	Description string                                                       // Locale key for the command menu description.
	Handler     func(context.Context, telegoapi.BotAPI, telego.Message) error // The function to execute when the command is received.
}

// MessageHandler handles incoming Telegram commands and callback queries.
// It orchestrates subscriber registration, prediction replies, the language
// selection flow, and the admin commands.
type MessageHandler struct {
	adminChecker *auth.AdminChecker
	subscribers  database.SubscriberRepository
	settings     database.SettingsRepository
	picker       *images.Picker
	dispatcher   Broadcaster

	// chatStates stores the /lng interaction state per chat.
	// Key: chatID (int64), Value: ChatState
	chatStates sync.Map

	// commands holds the list of available bot commands.
	commands []Command
}

// NewMessageHandler creates and initializes a new MessageHandler instance.
// It sets up dependencies and defines the available bot commands.
func NewMessageHandler(
	adminChecker *auth.AdminChecker,
	subscribers database.SubscriberRepository,
	settings database.SettingsRepository,
	picker *images.Picker,
	dispatcher Broadcaster,
) *MessageHandler {
	if adminChecker == nil {
		log.Fatal("MessageHandler: admin checker dependency is nil")
	}
	if subscribers == nil || settings == nil {
		log.Fatal("MessageHandler: repository dependencies are nil")
	}
	if picker == nil {
		log.Fatal("MessageHandler: image picker dependency is nil")
	}
	if dispatcher == nil {
		log.Fatal("MessageHandler: broadcast dispatcher dependency is nil")
	}
	h := &MessageHandler{
		adminChecker: adminChecker,
		subscribers:  subscribers,
		settings:     settings,
		picker:       picker,
		dispatcher:   dispatcher,
	}
	h.commands = []Command{
		{Command: "start", Description: "CmdStartDesc", Handler: h.HandleStart},
		{Command: "predict", Description: "CmdPredictDesc", Handler: h.HandlePredict},
		{Command: "lng", Description: "CmdLngDesc", Handler: h.HandleLanguage},
		{Command: "broadcast", Description: "CmdBroadcastDesc", Handler: h.HandleBroadcast},
		{Command: "setlink", Description: "CmdSetLinkDesc", Handler: h.HandleSetLink},
		{Command: "setcontact", Description: "CmdSetContactDesc", Handler: h.HandleSetContact},
	}
	return h
}

// GetCommandHandler retrieves the handler function associated with a specific
// command string (e.g., "start"). It returns nil if the command is not found.
func (h *MessageHandler) GetCommandHandler(command string) func(context.Context, telegoapi.BotAPI, telego.Message) error {
	for _, cmd := range h.commands {
		if cmd.Command == command {
			return cmd.Handler
		}
	}
	return nil
}

// GetChatState returns the current /lng flow state for a chat.
func (h *MessageHandler) GetChatState(chatID int64) ChatState {
	if state, ok := h.chatStates.Load(chatID); ok {
		if s, okType := state.(ChatState); okType {
			return s
		}
	}
	return StateIdle
}

func (h *MessageHandler) setChatState(chatID int64, state ChatState) {
	if state == StateIdle {
		h.chatStates.Delete(chatID)
		return
	}
	h.chatStates.Store(chatID, state)
}
