package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"predictbot/internal/images"
	"predictbot/internal/locales"
	"predictbot/pkg/telegoapi"

	tu "github.com/mymmrac/telego/telegoutil"
)

// sendPrediction picks a random image and sends it with the localized caption
// and the links keyboard. An empty image library yields a localized apology
// instead of an error.
func (h *MessageHandler) sendPrediction(ctx context.Context, bot telegoapi.BotAPI, chatID, userID int64) error {
	localizer := h.LocalizerFor(ctx, userID)

	imagePath, err := h.picker.Pick()
	if err != nil {
		if errors.Is(err, images.ErrEmptyLibrary) {
			log.Printf("[Predict User:%d] Image library is empty", userID)
			return h.sendSuccess(ctx, bot, chatID, locales.GetMessage(localizer, "MsgPredictNoImages", nil))
		}
		return h.sendError(ctx, bot, chatID, localizer, fmt.Errorf("failed to pick image: %w", err))
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return h.sendError(ctx, bot, chatID, localizer, fmt.Errorf("failed to open image %s: %w", imagePath, err))
	}
	defer file.Close()

	links, err := h.settings.GetLinks(ctx)
	if err != nil {
		// GetLinks falls back to the seeded defaults, so keep going.
		log.Printf("[Predict User:%d] Failed to load links, using defaults: %v", userID, err)
	}

	caption := locales.GetMessage(localizer, "MsgPredictionDefault", nil)
	if prediction, ok := images.ParsePrediction(imagePath); ok {
		caption = locales.GetMessage(localizer, "MsgPredictionCaption", map[string]interface{}{
			"Difficulty": prediction.Difficulty,
			"Value":      prediction.Value,
		})
	}

	params := tu.Photo(tu.ID(chatID), tu.File(file)).
		WithCaption(caption).
		WithReplyMarkup(predictionKeyboard(localizer, links))
	if _, err := bot.SendPhoto(ctx, params); err != nil {
		return h.sendError(ctx, bot, chatID, localizer, fmt.Errorf("failed to send prediction photo: %w", err))
	}
	return nil
}
