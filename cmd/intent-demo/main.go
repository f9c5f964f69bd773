package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"mrtbot/internal/intent"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	classifier, err := intent.NewGeminiClassifier(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}
	defer classifier.Close()

	userMessage := "อยากกินซูชิแถวสุขุมวิทครับ"
	if len(os.Args) > 1 {
		userMessage = os.Args[1]
	}
	fmt.Printf("User: %s\n", userMessage)

	result, err := classifier.Classify(ctx, "demo-user", userMessage)
	if err != nil {
		log.Fatalf("Error classifying: %v", err)
	}

	fmt.Printf("Intent: %s\n", result.Intent)
	fmt.Printf("Station: %s\n", result.Slot(intent.SlotStation))
	fmt.Printf("Keyword: %s\n", result.Slot(intent.SlotKeyword))
	fmt.Printf("Complete: %v\n", result.Complete)
	if result.FulfillmentText != "" {
		fmt.Printf("Reply: %s\n", result.FulfillmentText)
	}
}
