// README: Gemini-backed fallback responder.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

const systemPrompt = `คุณคือผู้ช่วยแชทบอทแนะนำร้านอาหารใกล้สถานี MRT สายสีน้ำเงินในกรุงเทพฯ
ตอบเป็นภาษาไทยสั้น ๆ สุภาพ ลงท้ายด้วยครับ`

// GeminiResponder implements Responder using Google's Gemini models.
type GeminiResponder struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiResponder initializes a new Gemini client for freeform replies.
func NewGeminiResponder(ctx context.Context, apiKey string) (*GeminiResponder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	return &GeminiResponder{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (r *GeminiResponder) Close() {
	r.client.Close()
}

// Reply answers free text. Provider failures are logged and degraded to a
// fixed apology, with a distinct message when the provider is overloaded.
func (r *GeminiResponder) Reply(ctx context.Context, text string) string {
	resp, err := r.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		log.Printf("fallback: generate content: %v", err)
		return ApologyFor(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Printf("fallback: API returned empty candidates")
		return ApologyGeneric
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
			parts = append(parts, string(txt))
		}
	}
	if len(parts) == 0 {
		return ApologyGeneric
	}
	return strings.Join(parts, "\n")
}

// ApologyFor maps a provider error to the right fixed apology.
func ApologyFor(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusServiceUnavailable {
		return ApologyOverloaded
	}
	return ApologyGeneric
}
