package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizeBuiltin(t *testing.T) {
	assert.NoError(t, InitI18NBundle(""))

	msg := Localize("en", MessageForwardDefault, map[string]interface{}{"Type": "Medical"})
	assert.Equal(t, "New urgent request: Medical", msg)

	// no French file loaded, English is used
	msg = Localize("fr", MessageForwardDefault, map[string]interface{}{"Type": "Shelter"})
	assert.Equal(t, "New urgent request: Shelter", msg)

	assert.Equal(t, "no.such.message", Localize("en", "no.such.message", nil))
}

func TestLocalizeFromMessageFiles(t *testing.T) {
	assert.NoError(t, InitI18NBundle("../i18n"))
	defer InitI18NBundle("")

	msg := Localize("fr", MessageForwardDefault, map[string]interface{}{"Type": "Evacuation"})
	assert.Equal(t, "Nouvelle demande urgente : Evacuation", msg)

	assert.Equal(t, "Verification code sent", Localize("en", MessageVerificationSent, nil))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("/nonexistent"))
	// a failed load keeps the previous bundle
	assert.Equal(t, "Verification code sent", Localize("en", MessageVerificationSent, nil))
}
