package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geoask/places-api/internal/dto"
	"github.com/geoask/places-api/internal/geocode"
)

var (
	// ErrMissingCredentials signals that the completion provider key is absent.
	ErrMissingCredentials = errors.New("completion provider credentials missing")
	// ErrUpstream signals that the completion provider call failed.
	ErrUpstream = errors.New("completion provider request failed")
)

// Coordinates is the user location optionally attached to a search.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Resolver turns candidate names into map markers and describes coordinates.
type Resolver interface {
	Resolve(ctx context.Context, name string, lat, lng float64) geocode.Resolution
	DescribeLocation(ctx context.Context, lat, lng float64) string
}

// SearchService runs the search pipeline: augment and forward the prompt,
// extract candidate names from the answers, resolve them to map markers,
// compose the response. Either collaborator may be nil when its credentials
// are missing; a nil resolver degrades to text-only answers.
type SearchService struct {
	completer Completer
	resolver  Resolver
}

// NewSearchService wires the pipeline.
func NewSearchService(completer Completer, resolver Resolver) *SearchService {
	return &SearchService{completer: completer, resolver: resolver}
}

const answerFormatInstruction = "Wrap every business name in double asterisks, like **Business Name**, and follow each name with its full postal address."

// Search executes one request end to end.
func (s *SearchService) Search(ctx context.Context, query string, coords *Coordinates) (dto.SearchResponse, error) {
	if s.completer == nil {
		return dto.SearchResponse{}, ErrMissingCredentials
	}

	answers, err := s.completer.Complete(ctx, s.buildSystemPrompt(ctx, coords), query)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if answers == nil {
		answers = []string{}
	}

	resp := dto.SearchResponse{Results: answers, Places: []dto.Place{}}
	if coords != nil && s.resolver != nil {
		resp.Places = s.resolvePlaces(ctx, answers, *coords)
	}
	return resp, nil
}

func (s *SearchService) buildSystemPrompt(ctx context.Context, coords *Coordinates) string {
	if coords == nil {
		return "You are a helpful local guide. " + answerFormatInstruction
	}

	location := fmt.Sprintf("coordinates %g, %g", coords.Lat, coords.Lng)
	if s.resolver != nil {
		location = s.resolver.DescribeLocation(ctx, coords.Lat, coords.Lng)
	}
	return fmt.Sprintf("You are a helpful local guide for someone in %s. Recommend real places near them. %s", location, answerFormatInstruction)
}

// resolvePlaces pools candidates across all answers, resolving each distinct
// name at most once per request and deduplicating the output by provider ID.
// Candidates that fail both lookups or land outside the bounding region are
// dropped silently.
func (s *SearchService) resolvePlaces(ctx context.Context, answers []string, coords Coordinates) []dto.Place {
	places := []dto.Place{}
	attempted := make(map[string]struct{})
	byProvider := make(map[string]struct{})

	for _, answer := range answers {
		for _, name := range ExtractCandidates(answer) {
			key := strings.ToLower(strings.TrimSpace(name))
			if _, done := attempted[key]; done {
				continue
			}
			attempted[key] = struct{}{}

			res := s.resolver.Resolve(ctx, name, coords.Lat, coords.Lng)
			if !res.Resolved() {
				continue
			}
			if _, dup := byProvider[res.Place.ProviderID]; dup {
				continue
			}
			byProvider[res.Place.ProviderID] = struct{}{}

			places = append(places, dto.Place{
				Name:             res.Place.Name,
				Latitude:         res.Place.Latitude,
				Longitude:        res.Place.Longitude,
				FormattedAddress: res.Place.FormattedAddress,
				Rating:           res.Place.Rating,
				ProviderID:       res.Place.ProviderID,
			})
		}
	}
	return places
}
