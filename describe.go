package tickpick

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// describeModel is the Gemini model used for company summaries.
const describeModel = "gemini-2.5-flash"

// Describe asks Gemini for a short profile of a listing.
//
// The genai client reads its API key from the environment (GEMINI_API_KEY).
// The answer is markdown, suitable for terminal rendering.
func Describe(ctx context.Context, l Listing) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("cannot initialize Gemini client: %w", err)
	}

	prompt := fmt.Sprintf(
		"Give a short profile of the company or fund listed as %q (ticker %s) on a US exchange: "+
			"what it does, its sector, and anything an investor should know. "+
			"Answer in markdown, five sentences at most. Do not give investment advice.",
		l.Name, l.Symbol)

	resp, err := client.Models.GenerateContent(ctx, describeModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("cannot generate summary for %q: %w", l.Symbol, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model for %q", l.Symbol)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
