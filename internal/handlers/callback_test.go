package handlers

import (
	"context"
	"strings"
	"testing"

	"predictbot/internal/locales"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLanguageCallback(userID, chatID int64, code string) telego.CallbackQuery {
	return telego.CallbackQuery{
		ID:      "query-1",
		From:    telego.User{ID: userID},
		Message: &telego.Message{MessageID: 200, Chat: telego.Chat{ID: chatID}},
		Data:    languageCallbackPrefix + code,
	}
}

func (s *testHandlerSuite) expectAck() {
	s.mockBot.On("AnswerCallbackQuery", mock.Anything, mock.AnythingOfType("*telego.AnswerCallbackQueryParams")).
		Return(nil)
}

func TestHandleLanguageShowsKeyboard(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.mockSubscribers.On("GetLanguage", ctx, testUserID).Return("en", nil).Once()
	captured := s.expectSentText()

	err := s.handler.HandleLanguage(ctx, s.mockBot, newCommandMessage(testUserID, testChatID, "/lng"))

	assert.NoError(t, err)
	assert.Equal(t, StateAwaitingLanguage, s.handler.GetChatState(testChatID))

	require.Len(t, *captured, 1)
	params := (*captured)[0]
	assert.Equal(t, enMessage("MsgLanguagePrompt", nil), params.Text)

	keyboard, ok := params.ReplyMarkup.(*telego.InlineKeyboardMarkup)
	require.True(t, ok)
	// Seven languages, two buttons per row.
	require.Len(t, keyboard.InlineKeyboard, 4)
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			assert.True(t, strings.HasPrefix(button.CallbackData, languageCallbackPrefix))
		}
	}
}

func TestLanguageSelectionFlow(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	// Step 1: /lng moves the chat into the awaiting state.
	s.mockSubscribers.On("GetLanguage", ctx, testUserID).Return("en", nil).Once()
	s.expectAck()
	captured := s.expectSentText()

	require.NoError(t, s.handler.HandleLanguage(ctx, s.mockBot, newCommandMessage(testUserID, testChatID, "/lng")))
	require.Equal(t, StateAwaitingLanguage, s.handler.GetChatState(testChatID))

	// Step 2: the selection callback persists the choice and resets the state.
	s.mockSubscribers.On("SetLanguage", ctx, testUserID, "es").Return(nil).Once()

	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, newLanguageCallback(testUserID, testChatID, "es"))

	assert.NoError(t, err)
	s.mockSubscribers.AssertExpectations(t)
	assert.Equal(t, StateIdle, s.handler.GetChatState(testChatID))

	// The confirmation is localized in the language that was just picked.
	require.Len(t, *captured, 2)
	expected := locales.GetMessage(locales.NewLocalizer("es"), "MsgLanguageUpdated", map[string]interface{}{
		"Language": locales.LanguageName("es"),
	})
	assert.Equal(t, expected, (*captured)[1].Text)
}

func TestStaleLanguageCallbackIgnored(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()
	s.expectAck()

	// No /lng happened, so the chat is idle and the press must be a no-op.
	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, newLanguageCallback(testUserID, testChatID, "de"))

	assert.NoError(t, err)
	s.mockSubscribers.AssertNotCalled(t, "SetLanguage", mock.Anything, mock.Anything, mock.Anything)
	s.mockBot.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestUnsupportedLanguageCodeIgnored(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.mockSubscribers.On("GetLanguage", ctx, testUserID).Return("en", nil).Once()
	s.expectAck()
	s.expectSentText()

	require.NoError(t, s.handler.HandleLanguage(ctx, s.mockBot, newCommandMessage(testUserID, testChatID, "/lng")))

	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, newLanguageCallback(testUserID, testChatID, "xx"))

	assert.NoError(t, err)
	s.mockSubscribers.AssertNotCalled(t, "SetLanguage", mock.Anything, mock.Anything, mock.Anything)
	// The chat keeps waiting for a valid selection.
	assert.Equal(t, StateAwaitingLanguage, s.handler.GetChatState(testChatID))
}

func TestNextPredictionCallback(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.mockSubscribers.On("GetLanguage", ctx, testUserID).Return("en", nil).Once()
	s.expectAck()
	captured := s.expectSentText()

	query := telego.CallbackQuery{
		ID:      "query-2",
		From:    telego.User{ID: testUserID},
		Message: &telego.Message{MessageID: 201, Chat: telego.Chat{ID: testChatID}},
		Data:    CallbackNextPrediction,
	}
	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, query)

	// The images directory is empty, so the button yields the apology text.
	assert.NoError(t, err)
	require.Len(t, *captured, 1)
	assert.Equal(t, enMessage("MsgPredictNoImages", nil), (*captured)[0].Text)
}

func TestCallbackWithoutMessageIgnored(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()
	s.expectAck()

	query := telego.CallbackQuery{
		ID:   "query-3",
		From: telego.User{ID: testUserID},
		Data: CallbackNextPrediction,
	}
	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, query)

	assert.NoError(t, err)
	s.mockBot.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	s.mockBot.AssertCalled(t, "AnswerCallbackQuery", mock.Anything, mock.Anything)
}

func TestUnknownCallbackDataIgnored(t *testing.T) {
	s := setupTestHandlerSuite(t)
	ctx := context.Background()
	s.expectAck()

	query := telego.CallbackQuery{
		ID:      "query-4",
		From:    telego.User{ID: testUserID},
		Message: &telego.Message{MessageID: 202, Chat: telego.Chat{ID: testChatID}},
		Data:    "something_else",
	}
	err := s.handler.HandleCallbackQuery(ctx, s.mockBot, query)

	assert.NoError(t, err)
	s.mockBot.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}
