// README: Gemini-backed intent classifier (JSON response mode).
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mrtbot/internal/station"
	"mrtbot/internal/types"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClassifier implements Classifier using Google's Gemini models.
type GeminiClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClassifier initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)

	return &GeminiClassifier{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClassifier) Close() {
	c.client.Close()
}

// geminiResult is the raw JSON shape the prompt asks for.
type geminiResult struct {
	Intent  string `json:"intent"`
	Station string `json:"station"`
	Keyword string `json:"keyword"`
	Reply   string `json:"reply"`
}

// Classify extracts the find_shops intent (station + venue keyword) from
// free Thai text. The station slot is only accepted when it names a real
// gazetteer station; otherwise the intent is incomplete and the model's
// clarification reply is relayed.
func (c *GeminiClassifier) Classify(ctx context.Context, userID types.ID, text string) (*Result, error) {
	prompt := buildPrompt(text)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	var raw geminiResult
	cleanJSON := cleanJSONString(responseText.String())
	if err := json.Unmarshal([]byte(cleanJSON), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	if raw.Intent != FindShops {
		return nil, ErrNoIntent
	}

	result := &Result{
		Intent:          FindShops,
		Slots:           map[string]string{},
		FulfillmentText: raw.Reply,
	}
	if _, ok := station.ByName(raw.Station); ok {
		result.Slots[SlotStation] = raw.Station
	}
	if kw := strings.TrimSpace(raw.Keyword); kw != "" {
		result.Slots[SlotKeyword] = kw
	}
	result.Complete = result.Slot(SlotStation) != "" && result.Slot(SlotKeyword) != ""
	return result, nil
}

func buildPrompt(text string) string {
	names := make([]string, 0, len(station.All()))
	for _, st := range station.All() {
		names = append(names, st.Name)
	}

	return fmt.Sprintf(`Role: You are the intent extractor for a Thai LINE chat bot that finds
shops and restaurants near MRT Blue Line stations in Bangkok.

Valid station names (use EXACT spelling, pick at most one):
%s

RULES:
1. IF the message asks to find food, drink, shops, or venues near a station:
   - Set "intent": "find_shops".
   - Set "station": the matched station name from the list above, or "" if none.
   - Set "keyword": the venue/cuisine search terms with the station name removed.
   - IF station or keyword is missing, put a short Thai clarification
     question in "reply" (e.g. ask which station, or what kind of shop).
2. ELSE set "intent": "none" and leave the other fields empty.
3. "reply" must be natural conversational Thai, no system tokens.

Output JSON Schema:
{
  "intent": "find_shops" | "none",
  "station": "string",
  "keyword": "string",
  "reply": "string"
}

User Message: %s`, strings.Join(names, ", "), text)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
