package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	MessageForwardDefault   = "alerts.forward.default"
	MessageVerificationSent = "verification.sent"
)

// builtinMessages are used for every language without a message file
var builtinMessages = []*i18n.Message{
	{ID: MessageForwardDefault, Other: "New urgent request: {{.Type}}"},
	{ID: MessageVerificationSent, Other: "Verification code sent"},
}

// Languages with a message file under the i18n directory
var Languages = []string{"en", "fr"}

var bundle *i18n.Bundle

func init() {
	bundle = newBuiltinBundle()
}

func newBuiltinBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := b.AddMessages(language.English, builtinMessages...); err != nil {
		panic(err)
	}
	return b
}

// InitI18NBundle loads the message file of every language in Languages
// from dir. An empty dir keeps the built-in English messages.
func InitI18NBundle(dir string) error {
	b := newBuiltinBundle()
	if dir != "" {
		for _, lang := range Languages {
			if _, err := b.LoadMessageFile(path.Join(dir, lang+".yaml")); err != nil {
				return err
			}
		}
	}
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders a message in lang, falling back to English and then to
// the message id itself
func Localize(lang, messageID string, data map[string]interface{}) string {
	msg, _ := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if msg == "" {
		return messageID
	}
	return msg
}
