// README: LINE Messaging API client wrapper for sending replies.
package infra

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// LineClient sends reply messages through the LINE Messaging API.
type LineClient struct {
	api *messaging_api.MessagingApiAPI
}

func NewLineClient(channelToken string) (*LineClient, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("line client: %w", err)
	}
	return &LineClient{api: api}, nil
}

// Reply sends messages on a reply token. Tokens are single use and expire
// quickly, so there is no retry here.
func (c *LineClient) Reply(_ context.Context, replyToken string, messages []messaging_api.MessageInterface) error {
	_, err := c.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	if err != nil {
		return fmt.Errorf("line reply: %w", err)
	}
	return nil
}
