package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestLocalize(t *testing.T) {
	content := &Content{
		Title: "Right to Equality",
		Type:  ContentFundamentalRight,
		Body: datatypes.NewJSONType(Translations{
			"en": "The State shall not deny equality before the law.",
			"hi": "राज्य विधि के समक्ष समता से वंचित नहीं करेगा।",
		}),
		Explanation: datatypes.NewJSONType(Translations{
			"en": "Everyone is treated equally.",
		}),
	}

	t.Run("requested language is returned when present", func(t *testing.T) {
		localized := content.Localize("hi")

		assert.Equal(t, "hi", localized.Language)
		assert.Equal(t, "राज्य विधि के समक्ष समता से वंचित नहीं करेगा।", localized.Body)
	})

	t.Run("missing translation falls back to English", func(t *testing.T) {
		localized := content.Localize("ta")

		assert.Equal(t, "en", localized.Language)
		assert.Equal(t, "The State shall not deny equality before the law.", localized.Body)
	})

	t.Run("explanation falls back independently of body", func(t *testing.T) {
		localized := content.Localize("hi")

		assert.Equal(t, "hi", localized.Language)
		assert.Equal(t, "Everyone is treated equally.", localized.Explanation)
	})
}
