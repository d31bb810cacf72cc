package medium

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mediumstats/lib/unixtime"

	"go.opentelemetry.io/otel/codes"
)

// Event kinds a publication exposes time-bucketed stats for.
const (
	EventViews    = "views"
	EventVisitors = "visitors"
)

// Publication grabs stats scoped to a publication. Identity is resolved
// once at construction by decoding the publication's homepage payload
// and is immutable afterwards.
type Publication struct {
	*Client

	Id        string
	Slug      string
	Name      string
	CreatorId string
	// Description may legitimately be empty.
	Description string
	// Domain is empty when the publication has no custom domain set.
	Domain string
}

// NewPublication resolves the publication's identity from its homepage
// before returning. If that fetch or decode fails, construction fails
// and no partially-initialized value escapes.
func NewPublication(ctx context.Context, creds Credentials, slug string, opts ...Option) (*Publication, error) {
	ctx, span := tracer.Start(ctx, "publication:New")
	defer span.End()

	client := NewClient(creds, opts...)

	body, err := client.get(ctx, "/"+slug, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch homepage")
		return nil, fmt.Errorf("fetch publication homepage: %w", err)
	}

	var payload struct {
		Collection *struct {
			Id          string `json:"id"`
			Slug        string `json:"slug"`
			Name        string `json:"name"`
			CreatorId   string `json:"creatorId"`
			Description string `json:"description"`
			Domain      string `json:"domain"`
		} `json:"collection"`
	}
	err = decodePayload(body, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode homepage")
		return nil, err
	}
	if payload.Collection == nil {
		err = fmt.Errorf(`publication homepage payload missing "collection"`)
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing collection")
		return nil, err
	}

	col := payload.Collection
	return &Publication{
		Client:      client,
		Id:          col.Id,
		Slug:        col.Slug,
		Name:        col.Name,
		CreatorId:   col.CreatorId,
		Description: col.Description,
		Domain:      col.Domain,
	}, nil
}

// CollectionsEndpoint is the resolved base URL for this publication's
// collection-stats endpoints.
func (p *Publication) CollectionsEndpoint() string {
	return fmt.Sprintf("%s/_/api/collections/%s/stats", p.http.BaseURL, p.Id)
}

// Events fetches time-bucketed stats of the given kind (EventViews or
// EventVisitors) over [start, stop) in epoch ms. Any other kind is
// rejected before a request is made.
func (p *Publication) Events(ctx context.Context, start, stop time.Time, kind string) ([]map[string]any, error) {
	if kind != EventViews && kind != EventVisitors {
		return nil, fmt.Errorf(`event kind must be %q or %q, got %q`, EventViews, EventVisitors, kind)
	}

	ctx, span := tracer.Start(ctx, "publication:Events")
	defer span.End()

	path := fmt.Sprintf("/_/api/collections/%s/stats/%s", p.Id, kind)
	body, err := p.get(ctx, path, map[string]string{
		"from": strconv.FormatInt(unixtime.ToMillis(start), 10),
		"to":   strconv.FormatInt(unixtime.ToMillis(stop), 10),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	var payload struct {
		Value []map[string]any `json:"value"`
	}
	err = decodePayload(body, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode events")
		return nil, err
	}
	return payload.Value, nil
}

// SummaryStats fetches the lifetime per-article listing for the
// publication, following pagination cursors until exhausted.
func (p *Publication) SummaryStats(ctx context.Context) ([]map[string]any, error) {
	return p.fetchListing(
		ctx,
		fmt.Sprintf("/%s/stats/stories", p.Slug),
		map[string]string{"limit": "50"},
	)
}
