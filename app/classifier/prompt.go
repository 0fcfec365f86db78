package classifier

import (
	"fmt"
	"strings"
)

// buildPrompt enumerates the user's category names as the only legal
// classification targets and asks for up to three ranked alternative tags.
// The prompt text is the contract with the model; change it carefully.
func buildPrompt(content string, categories []string) string {
	return fmt.Sprintf(`As an advanced content classifier, your task is to categorize the given content into one of these predefined categories: %s.

After selecting the most appropriate category, provide up to 3 alternative suggestions that capture the essence of the content. These suggestions should:

1. Be highly specific to the content
2. Relate to human interests and perspectives
3. Facilitate easy content discovery later
4. Balance uniqueness with common search terms
5. Not be limited to traditional classification labels

Rank your suggestions from most to least useful for finding the content later. Aim for a mix of creativity and practicality. Your goal is to provide insightful, human-centric categories that also serve as effective search terms.

Content to classify: %s

Please respond with:
1. The chosen category from the predefined list
2. Up to 3 ranked alternative suggestions that best describe the content's core themes or ideas, optimized for future discoverability`,
		strings.Join(categories, ", "), content)
}
