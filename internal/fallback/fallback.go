// README: Generative fallback responder contract and fixed apology texts.
package fallback

import "context"

// Apology texts sent when the provider fails. The overloaded variant is the
// only status distinction preserved (HTTP 503 vs anything else).
const (
	ApologyOverloaded = "ขออภัยครับ ตอนนี้มีผู้ใช้งานจำนวนมาก กรุณาลองใหม่อีกครั้งในอีกสักครู่ครับ"
	ApologyGeneric    = "ขออภัยครับ ระบบไม่สามารถตอบกลับได้ในขณะนี้ กรุณาลองใหม่อีกครั้งครับ"
)

// Responder answers free-form text when no structured intent was found.
// Implementations never return an error: provider failures degrade to a
// fixed apology so the conversation always gets a reply.
type Responder interface {
	Reply(ctx context.Context, text string) string
}
