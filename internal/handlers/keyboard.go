package handlers

import (
	"fmt"

	"predictbot/internal/database/models"
	"predictbot/internal/locales"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// predictionKeyboard builds the inline keyboard attached to every prediction
// reply: a "next" callback button plus the affiliate and contact link buttons.
func predictionKeyboard(localizer *i18n.Localizer, links models.Links) *telego.InlineKeyboardMarkup {
	rows := [][]telego.InlineKeyboardButton{
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(locales.GetMessage(localizer, "BtnNextPrediction", nil)).
				WithCallbackData(CallbackNextPrediction),
		),
	}
	if links.Affiliate != "" {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(locales.GetMessage(localizer, "BtnStartPlaying", nil)).
				WithURL(links.Affiliate),
		))
	}
	if links.Contact != "" {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(locales.GetMessage(localizer, "BtnSupport", nil)).
				WithURL(links.Contact),
		))
	}
	return tu.InlineKeyboard(rows...)
}

// languageKeyboard builds the /lng selection keyboard, two languages per row.
func languageKeyboard() *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton
	var row []telego.InlineKeyboardButton
	for _, lang := range locales.Supported() {
		label := lang.Name
		if lang.Flag != "" {
			label = fmt.Sprintf("%s %s", lang.Flag, lang.Name)
		}
		row = append(row, tu.InlineKeyboardButton(label).
			WithCallbackData(languageCallbackPrefix+lang.Code))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tu.InlineKeyboard(rows...)
}
