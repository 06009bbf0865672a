package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeImagePrompt_Deterministic(t *testing.T) {
	a := ComposeImagePrompt("Physics", "Newton's Laws", "focus on inertia")
	b := ComposeImagePrompt("Physics", "Newton's Laws", "focus on inertia")

	assert.Equal(t, a, b)
}

func TestComposeImagePrompt_EmbedsFields(t *testing.T) {
	prompt := ComposeImagePrompt("Biology", "Photosynthesis", "")

	assert.Contains(t, prompt, "Photosynthesis")
	assert.Contains(t, prompt, "Biology")
	assert.NotContains(t, prompt, "Additional details:")
}

func TestComposeImagePrompt_AppendsDescription(t *testing.T) {
	prompt := ComposeImagePrompt("Biology", "Photosynthesis", "light and dark reactions")

	assert.Contains(t, prompt, "Additional details: light and dark reactions. ")
}

func TestComposeExplanationPrompts_Deterministic(t *testing.T) {
	sysA, userA := ComposeExplanationPrompts("Chemistry", "Ionic Bonds", "table salt")
	sysB, userB := ComposeExplanationPrompts("Chemistry", "Ionic Bonds", "table salt")

	assert.Equal(t, sysA, sysB)
	assert.Equal(t, userA, userB)
}

func TestComposeExplanationPrompts_Content(t *testing.T) {
	sys, user := ComposeExplanationPrompts("Chemistry", "Ionic Bonds", "")

	assert.Contains(t, sys, "Chemistry")
	assert.Contains(t, user, `"Ionic Bonds"`)
	assert.Contains(t, user, "Common misconceptions")
	assert.NotContains(t, user, "Additional context:")

	_, withDesc := ComposeExplanationPrompts("Chemistry", "Ionic Bonds", "table salt")
	assert.Contains(t, withDesc, "Additional context: table salt. ")
}
