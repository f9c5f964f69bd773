// README: LINE webhook endpoint; verifies signatures and dispatches events.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"mrtbot/internal/bot"
	"mrtbot/internal/types"
)

type WebhookHandler struct {
	channelSecret string
	bot           *bot.Service
}

func NewWebhookHandler(channelSecret string, svc *bot.Service) *WebhookHandler {
	return &WebhookHandler{channelSecret: channelSecret, bot: svc}
}

// Handle parses and signature-checks a webhook callback, then dispatches the
// batch. The 200 is written only after every event has been handled; LINE
// retries non-2xx deliveries, so signature failures get a 400 to stop them.
func (h *WebhookHandler) Handle(c *gin.Context) {
	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			writeError(c, http.StatusBadRequest, "invalid signature")
			return
		}
		log.Printf("webhook: parse request: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	h.bot.HandleEvents(c.Request.Context(), convertEvents(cb.Events))
	c.Status(http.StatusOK)
}

// convertEvents maps SDK callback events onto the transport-neutral event
// type. Unsupported event kinds (joins, unsends, sticker messages, ...) are
// dropped here so the conversation layer only sees what it handles.
func convertEvents(events []webhook.EventInterface) []bot.Event {
	out := make([]bot.Event, 0, len(events))
	for _, ev := range events {
		switch e := ev.(type) {
		case webhook.MessageEvent:
			be := bot.Event{
				Type:       bot.EventMessage,
				UserID:     sourceUserID(e.Source),
				ReplyToken: e.ReplyToken,
			}
			switch m := e.Message.(type) {
			case webhook.TextMessageContent:
				be.Text = m.Text
			case webhook.LocationMessageContent:
				be.Location = &types.Point{Lat: m.Latitude, Lng: m.Longitude}
			default:
				continue
			}
			out = append(out, be)
		case webhook.PostbackEvent:
			if e.Postback == nil {
				continue
			}
			out = append(out, bot.Event{
				Type:         bot.EventPostback,
				UserID:       sourceUserID(e.Source),
				ReplyToken:   e.ReplyToken,
				PostbackData: e.Postback.Data,
			})
		case webhook.FollowEvent:
			out = append(out, bot.Event{
				Type:       bot.EventFollow,
				UserID:     sourceUserID(e.Source),
				ReplyToken: e.ReplyToken,
			})
		}
	}
	return out
}

func sourceUserID(src webhook.SourceInterface) types.ID {
	if u, ok := src.(webhook.UserSource); ok {
		return types.ID(u.UserId)
	}
	return ""
}
