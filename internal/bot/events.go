// README: Transport-neutral inbound events handed over by the webhook layer.
package bot

import "mrtbot/internal/types"

type EventType string

const (
	EventMessage  EventType = "message"
	EventPostback EventType = "postback"
	EventFollow   EventType = "follow"
)

// Event is one conversation event, already authenticated by the transport.
type Event struct {
	Type       EventType
	UserID     types.ID
	ReplyToken string

	// Text is set for text message events.
	Text string
	// Location is set for shared-location message events.
	Location *types.Point
	// PostbackData is the raw URL-encoded payload of a postback event.
	PostbackData string
}
