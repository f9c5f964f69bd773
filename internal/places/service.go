// README: Google Places nearby-search adapter; normalizes results and fails open to empty.
package places

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"googlemaps.github.io/maps"

	"mrtbot/internal/modules/shop"
	"mrtbot/internal/types"
)

const (
	// searchRadiusMeters matches the walking range around a station exit.
	searchRadiusMeters = 1500
	// searchTimeout bounds one provider call so a slow upstream cannot
	// stall the webhook handler.
	searchTimeout = 5 * time.Second
	searchLang    = "th"
)

// Options tunes the adapter's normalization policy.
type Options struct {
	// SortByRating re-sorts results descending by rating (missing rating
	// sorts last) before returning. Default keeps provider relevance order.
	SortByRating bool
}

// nearbySearcher is the slice of *maps.Client the adapter uses; swapped for
// a stub in tests.
type nearbySearcher interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// Service wraps the Places API nearby search.
type Service struct {
	client nearbySearcher
	opts   Options
}

// NewService creates a Service with the given API key.
func NewService(apiKey string, opts Options) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client, opts: opts}, nil
}

// Search looks up venues matching keyword around center. Any transport or
// provider error is logged and degraded to an empty result set; a broken
// upstream reads as "no shops found" rather than breaking the conversation.
func (s *Service) Search(ctx context.Context, keyword string, center types.Point) []shop.Shop {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	resp, err := s.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   searchRadiusMeters,
		Keyword:  keyword,
		Language: searchLang,
	})
	if err != nil {
		log.Printf("places: nearby search %q: %v", keyword, err)
		return nil
	}

	results := make([]shop.Shop, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, normalize(r))
	}
	if s.opts.SortByRating {
		sort.SliceStable(results, func(i, j int) bool {
			return ratingOrZero(results[i]) > ratingOrZero(results[j])
		})
	}
	return results
}

func normalize(r maps.PlacesSearchResult) shop.Shop {
	sh := shop.Shop{
		ID:      types.ID(r.PlaceID),
		Name:    r.Name,
		Address: r.Vicinity,
	}
	if r.Rating > 0 {
		rating := float64(r.Rating)
		sh.Rating = &rating
	}
	for _, p := range r.Photos {
		sh.PhotoRefs = append(sh.PhotoRefs, p.PhotoReference)
	}
	return sh
}

func ratingOrZero(sh shop.Shop) float64 {
	if sh.Rating == nil {
		return 0
	}
	return *sh.Rating
}
