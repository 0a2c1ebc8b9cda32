package broadcast

import (
	"context"
	"errors"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBot is a mock implementing the telegoapi.BotAPI interface.
type MockBot struct {
	mock.Mock
}

func (m *MockBot) SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*telego.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBot) SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error) {
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*telego.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBot) AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockBot) SetMyCommands(ctx context.Context, params *telego.SetMyCommandsParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func newTestDispatcher(bot *MockBot) *Dispatcher {
	d := NewDispatcher(bot)
	// Single worker keeps mock call ordering easy to reason about.
	d.workers = 1
	return d
}

func TestSendDeliversToAll(t *testing.T) {
	mockBot := new(MockBot)
	d := newTestDispatcher(mockBot)

	mockBot.On("SendMessage", mock.Anything, mock.AnythingOfType("*telego.SendMessageParams")).
		Return(&telego.Message{}, nil).Times(3)

	sent, failed := d.Send(context.Background(), []int64{1, 2, 3}, "hello")

	assert.Equal(t, 3, sent)
	assert.Equal(t, 0, failed)
	mockBot.AssertExpectations(t)
}

func TestSendToleratesPerRecipientFailure(t *testing.T) {
	mockBot := new(MockBot)
	d := newTestDispatcher(mockBot)

	// The 2nd recipient blocked the bot; 1st and 3rd must still be delivered.
	mockBot.On("SendMessage", mock.Anything, mock.MatchedBy(func(p *telego.SendMessageParams) bool {
		return p.ChatID.ID == 2
	})).Return(nil, errors.New("Forbidden: bot was blocked by the user")).Once()
	mockBot.On("SendMessage", mock.Anything, mock.MatchedBy(func(p *telego.SendMessageParams) bool {
		return p.ChatID.ID != 2
	})).Return(&telego.Message{}, nil).Times(2)

	sent, failed := d.Send(context.Background(), []int64{1, 2, 3}, "hello")

	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)
	mockBot.AssertExpectations(t)
}

func TestSendEmptyRecipientList(t *testing.T) {
	mockBot := new(MockBot)
	d := newTestDispatcher(mockBot)

	sent, failed := d.Send(context.Background(), nil, "hello")

	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
	mockBot.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestSendCountsSkippedOnCancel(t *testing.T) {
	mockBot := new(MockBot)
	d := newTestDispatcher(mockBot)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context may still let a few queued sends through, but
	// whatever is skipped must be reported as failed.
	mockBot.On("SendMessage", mock.Anything, mock.Anything).
		Return(&telego.Message{}, nil).Maybe()

	sent, failed := d.Send(ctx, []int64{1, 2, 3}, "hello")

	assert.Equal(t, 3, sent+failed)
}
