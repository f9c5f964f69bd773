// README: LINE reply rendering: shop carousel bubbles and fixed Thai texts.
package bot

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"mrtbot/internal/modules/browse"
	"mrtbot/internal/modules/shop"
)

// User-facing reply texts (Thai, carried over from the production bot).
const (
	textGreeting      = `สวัสดีครับ! พิมพ์ชื่อสถานี MRT สายสีน้ำเงินพร้อมประเภทร้าน เช่น "คาเฟ่ สีลม" เพื่อค้นหาร้านใกล้สถานีได้เลยครับ`
	textHelp          = `ขออภัยครับ ไม่พบชื่อสถานี MRT สายสีน้ำเงินในข้อความของคุณ ลองพิมพ์เช่น 'คาเฟ่ สนามไชย' หรือ 'ร้านอาหารญี่ปุ่น สุขุมวิท' ครับ`
	textNoShops       = "ขออภัยครับ ไม่พบร้านค้าที่ตรงกับเงื่อนไขของคุณ"
	textNoSession     = "ยังไม่มีการค้นหาล่าสุดครับ ลองพิมพ์ชื่อสถานีพร้อมประเภทร้านก่อนนะครับ"
	textLastResults   = "นี่คือผลการค้นหาสุดท้ายแล้วครับ"
	textEmptyPage     = "ร้านในหน้านี้ไม่พร้อมแสดงผลแล้วครับ ลองค้นหาใหม่อีกครั้งนะครับ"
	textFavoriteSaved = "บันทึกร้านนี้เป็นร้านโปรดของคุณเรียบร้อยแล้ว! ❤️"
	textWatchLater    = "บันทึกร้านนี้ไว้ดูภายหลังเรียบร้อยแล้วครับ 🔖"
	textQuotaUsedUp   = "ขออภัยครับ สิทธิ์ใช้งานผู้ช่วย AI ของคุณสำหรับเดือนนี้หมดแล้วครับ"
	carouselAltText   = "ผลการค้นหาร้านค้า"
	noRatingLabel     = "ไม่มีคะแนน"
	placeholderImage  = "https://placehold.co/400x260.png?text=no+photo"
)

// Renderer builds LINE messages from resolved shop pages.
type Renderer struct {
	// mapsKey signs Places photo URLs on carousel cards.
	mapsKey string
}

func NewRenderer(mapsKey string) *Renderer {
	return &Renderer{mapsKey: mapsKey}
}

func textMessage(text string) []messaging_api.MessageInterface {
	return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: text}}
}

// ShopPage renders one page as a flex carousel: one bubble per shop, plus a
// trailing "next page" bubble when more results remain. An empty (fully
// evicted) page degrades to a plain text reply.
func (r *Renderer) ShopPage(page browse.Page) []messaging_api.MessageInterface {
	if len(page.Shops) == 0 {
		return textMessage(textEmptyPage)
	}

	bubbles := make([]messaging_api.FlexBubble, 0, len(page.Shops)+1)
	for _, sh := range page.Shops {
		bubbles = append(bubbles, r.shopBubble(sh))
	}
	if page.HasNext {
		bubbles = append(bubbles, nextPageBubble())
	}

	return []messaging_api.MessageInterface{messaging_api.FlexMessage{
		AltText:  carouselAltText,
		Contents: messaging_api.FlexCarousel{Contents: bubbles},
	}}
}

func (r *Renderer) shopBubble(sh shop.Shop) messaging_api.FlexBubble {
	rating := noRatingLabel
	if sh.Rating != nil {
		rating = fmt.Sprintf("⭐ %.1f", *sh.Rating)
	}

	mapsURL := fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=Google&query_place_id=%s", sh.ID)

	return messaging_api.FlexBubble{
		Hero: &messaging_api.FlexImage{
			Url:         r.photoURL(sh),
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
		},
		Body: &messaging_api.FlexBox{
			Layout: "vertical",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{Text: sh.DisplayName(), Weight: "bold", Size: "xl", Wrap: true},
				messaging_api.FlexText{Text: rating, Size: "sm", Color: "#999999", Margin: "md"},
				messaging_api.FlexText{Text: sh.DisplayAddress(), Size: "sm", Color: "#666666", Wrap: true, Margin: "md"},
			},
		},
		Footer: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexButton{
					Style:  "link",
					Height: "sm",
					Action: messaging_api.UriAction{Label: "ดูบนแผนที่", Uri: mapsURL},
				},
				messaging_api.FlexButton{
					Style:  "primary",
					Color:  "#FF6B6B",
					Height: "sm",
					Action: messaging_api.PostbackAction{
						Label: "❤️ เพิ่มเป็นร้านโปรด",
						Data:  fmt.Sprintf("action=%s&shop_id=%s", ActionAddFavorite, sh.ID),
					},
				},
				messaging_api.FlexButton{
					Style:  "secondary",
					Color:  "#BDBDBD",
					Height: "sm",
					Action: messaging_api.PostbackAction{
						Label: "🔖 บันทึกไว้ดูภายหลัง",
						Data:  fmt.Sprintf("action=%s&shop_id=%s", ActionAddWatchLater, sh.ID),
					},
				},
			},
		},
	}
}

func nextPageBubble() messaging_api.FlexBubble {
	return messaging_api.FlexBubble{
		Body: &messaging_api.FlexBox{
			Layout: "vertical",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{Text: "ยังมีร้านอื่นอีกครับ", Weight: "bold", Size: "lg", Wrap: true},
			},
		},
		Footer: &messaging_api.FlexBox{
			Layout: "vertical",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexButton{
					Style:  "primary",
					Height: "sm",
					Action: messaging_api.PostbackAction{
						Label: "ดูหน้าถัดไป ➡️",
						Data:  fmt.Sprintf("action=%s", ActionNextPage),
					},
				},
			},
		},
	}
}

func (r *Renderer) photoURL(sh shop.Shop) string {
	if len(sh.PhotoRefs) == 0 {
		return placeholderImage
	}
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s",
		sh.PhotoRefs[0], r.mapsKey,
	)
}
