// README: Conversation orchestrator; routes events to search, pagination and lists.
package bot

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"mrtbot/internal/fallback"
	"mrtbot/internal/intent"
	"mrtbot/internal/modules/aiusage"
	"mrtbot/internal/modules/browse"
	"mrtbot/internal/modules/saved"
	"mrtbot/internal/modules/shop"
	"mrtbot/internal/station"
	"mrtbot/internal/types"
)

// defaultKeyword is searched when the user shares a bare location.
const defaultKeyword = "ร้านอาหาร"

// Searcher finds venues near a point. Implementations fail open: an empty
// slice on provider trouble, never an error.
type Searcher interface {
	Search(ctx context.Context, keyword string, center types.Point) []shop.Shop
}

// ShopCache persists venue records fetched from the provider.
type ShopCache interface {
	UpsertMany(ctx context.Context, shops []shop.Shop) error
}

// SessionStarter freezes a fresh result set as the user's current session.
type SessionStarter interface {
	StartSearch(ctx context.Context, userID types.ID, query string, placeIDs []types.ID) error
}

// Pager serves subsequent pages of the current session.
type Pager interface {
	NextPage(ctx context.Context, userID types.ID) (browse.Page, error)
}

// Lister stores per-user saved shop lists.
type Lister interface {
	Add(ctx context.Context, userID types.ID, list saved.ListType, shopID types.ID) error
}

// Quota meters the generative fallback.
type Quota interface {
	UseCall(ctx context.Context, userID types.ID) error
}

// Replyer delivers messages on a reply token.
type Replyer interface {
	Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error
}

type Service struct {
	search     Searcher
	shops      ShopCache
	sessions   SessionStarter
	pager      Pager
	lists      Lister
	quota      Quota
	classifier intent.Classifier
	responder  fallback.Responder
	replyer    Replyer
	render     *Renderer
}

func NewService(
	search Searcher,
	shops ShopCache,
	sessions SessionStarter,
	pager Pager,
	lists Lister,
	quota Quota,
	classifier intent.Classifier,
	responder fallback.Responder,
	replyer Replyer,
	render *Renderer,
) *Service {
	return &Service{
		search:     search,
		shops:      shops,
		sessions:   sessions,
		pager:      pager,
		lists:      lists,
		quota:      quota,
		classifier: classifier,
		responder:  responder,
		replyer:    replyer,
		render:     render,
	}
}

// HandleEvents processes a webhook batch. Events are independent, so each
// runs in its own goroutine; the call returns once every reply is sent.
func (s *Service) HandleEvents(ctx context.Context, events []Event) {
	var wg sync.WaitGroup
	for _, ev := range events {
		wg.Add(1)
		go func(ev Event) {
			defer wg.Done()
			s.handleEvent(ctx, ev)
		}(ev)
	}
	wg.Wait()
}

func (s *Service) handleEvent(ctx context.Context, ev Event) {
	switch ev.Type {
	case EventMessage:
		s.handleMessage(ctx, ev)
	case EventPostback:
		s.handlePostback(ctx, ev)
	case EventFollow:
		s.reply(ctx, ev.ReplyToken, textMessage(textGreeting))
	}
}

// handleMessage routes a user message. Shared locations search around the
// nearest station; text containing a station name searches directly; anything
// else goes through the intent classifier, degrading to the quota-guarded
// generative fallback.
func (s *Service) handleMessage(ctx context.Context, ev Event) {
	if ev.Location != nil {
		st := station.Nearest(*ev.Location)
		s.runSearch(ctx, ev, defaultKeyword, st)
		return
	}
	if ev.Text == "" {
		return
	}

	if st, keyword, ok := station.Find(ev.Text); ok {
		if keyword == "" {
			keyword = defaultKeyword
		}
		s.runSearch(ctx, ev, keyword, st)
		return
	}

	res, err := s.classifier.Classify(ctx, ev.UserID, ev.Text)
	if err != nil {
		s.freeformReply(ctx, ev)
		return
	}
	if res.Intent != intent.FindShops {
		s.freeformReply(ctx, ev)
		return
	}
	if !res.Complete {
		text := res.FulfillmentText
		if text == "" {
			text = textHelp
		}
		s.reply(ctx, ev.ReplyToken, textMessage(text))
		return
	}

	st, ok := station.ByName(res.Slot(intent.SlotStation))
	if !ok {
		s.reply(ctx, ev.ReplyToken, textMessage(textHelp))
		return
	}
	keyword := res.Slot(intent.SlotKeyword)
	if keyword == "" {
		keyword = defaultKeyword
	}
	s.runSearch(ctx, ev, keyword, st)
}

// runSearch executes a fresh search and replies with page one. The session
// is only replaced when the search yields results, so an empty hit leaves
// the previous result set browsable.
func (s *Service) runSearch(ctx context.Context, ev Event, keyword string, st station.Station) {
	results := s.search.Search(ctx, keyword, st.Position)
	if len(results) == 0 {
		s.reply(ctx, ev.ReplyToken, textMessage(textNoShops))
		return
	}

	if err := s.shops.UpsertMany(ctx, results); err != nil {
		// Cache writes are best effort: page one renders from the live
		// results, only later pages depend on the cache.
		log.Printf("bot: cache results for %s: %v", ev.UserID, err)
	}

	ids := make([]types.ID, len(results))
	for i, sh := range results {
		ids[i] = sh.ID
	}
	query := keyword + " " + st.Name
	if err := s.sessions.StartSearch(ctx, ev.UserID, query, ids); err != nil {
		log.Printf("bot: start session for %s: %v", ev.UserID, err)
	}

	s.reply(ctx, ev.ReplyToken, s.render.ShopPage(browse.FirstPage(results)))
}

// freeformReply routes text the classifier could not structure to the
// generative responder, gated by the per-user monthly quota.
func (s *Service) freeformReply(ctx context.Context, ev Event) {
	if err := s.quota.UseCall(ctx, ev.UserID); err != nil {
		if errors.Is(err, aiusage.ErrQuotaExhausted) {
			s.reply(ctx, ev.ReplyToken, textMessage(textQuotaUsedUp))
			return
		}
		log.Printf("bot: quota check for %s: %v", ev.UserID, err)
		s.reply(ctx, ev.ReplyToken, textMessage(fallback.ApologyGeneric))
		return
	}
	s.reply(ctx, ev.ReplyToken, textMessage(s.responder.Reply(ctx, ev.Text)))
}

// handlePostback dispatches a parsed carousel action. Malformed payloads are
// dropped without a reply: they only come from stale or forged buttons.
func (s *Service) handlePostback(ctx context.Context, ev Event) {
	pb, err := ParsePostback(ev.PostbackData)
	if err != nil {
		log.Printf("bot: postback from %s: %v", ev.UserID, err)
		return
	}

	switch pb.Action {
	case ActionNextPage:
		s.handleNextPage(ctx, ev)
	case ActionAddFavorite:
		s.handleSave(ctx, ev, saved.ListFavorites, pb.ShopID, textFavoriteSaved)
	case ActionAddWatchLater:
		s.handleSave(ctx, ev, saved.ListWatchLater, pb.ShopID, textWatchLater)
	}
}

func (s *Service) handleNextPage(ctx context.Context, ev Event) {
	page, err := s.pager.NextPage(ctx, ev.UserID)
	switch {
	case errors.Is(err, browse.ErrNoSession):
		s.reply(ctx, ev.ReplyToken, textMessage(textNoSession))
	case errors.Is(err, browse.ErrExhausted):
		s.reply(ctx, ev.ReplyToken, textMessage(textLastResults))
	case err != nil:
		log.Printf("bot: next page for %s: %v", ev.UserID, err)
	default:
		s.reply(ctx, ev.ReplyToken, s.render.ShopPage(page))
	}
}

func (s *Service) handleSave(ctx context.Context, ev Event, list saved.ListType, shopID types.ID, done string) {
	if err := s.lists.Add(ctx, ev.UserID, list, shopID); err != nil {
		log.Printf("bot: save %s to %s for %s: %v", shopID, list, ev.UserID, err)
		s.reply(ctx, ev.ReplyToken, textMessage(fallback.ApologyGeneric))
		return
	}
	s.reply(ctx, ev.ReplyToken, textMessage(done))
}

func (s *Service) reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) {
	if err := s.replyer.Reply(ctx, replyToken, messages); err != nil {
		log.Printf("bot: reply: %v", err)
	}
}
