package visual

import (
	"fmt"
	"strings"
)

// ComposeImagePrompt builds the instruction sent to every image
// provider. Deterministic: identical inputs produce byte-identical
// prompts, so the chain hands the same prompt to whichever provider
// ends up serving the request.
func ComposeImagePrompt(subject, topic, description string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create an educational diagram or illustration about %s in the context of %s. ", topic, subject)
	if description != "" {
		fmt.Fprintf(&b, "Additional details: %s. ", description)
	}
	b.WriteString("Make it visually clear, educational, and suitable for learning. " +
		"Style: clean, modern educational illustration with clear labels and visual elements that explain the concept effectively.")

	return b.String()
}

// ComposeExplanationPrompts builds the system and user messages for the
// explanation call. Deterministic for the same reason as above.
func ComposeExplanationPrompts(subject, topic, description string) (systemPrompt, userPrompt string) {
	systemPrompt = fmt.Sprintf(
		"You are an expert educator specializing in %s. "+
			"Provide comprehensive, clear explanations that help students understand complex concepts through visual learning.",
		subject)

	var b strings.Builder

	fmt.Fprintf(&b, "Provide a detailed explanation about %q in the context of %s. ", topic, subject)
	if description != "" {
		fmt.Fprintf(&b, "Additional context: %s. ", description)
	}
	b.WriteString("Structure your response with: " +
		"1. A clear definition or overview. " +
		"2. Key components or elements. " +
		"3. How it works or why it's important. " +
		"4. Real-world applications or examples. " +
		"5. Common misconceptions or things to remember. " +
		"Make it educational, engaging, and suitable for visual learning. " +
		"The explanation should complement a visual diagram or illustration.")

	return systemPrompt, b.String()
}
