package medium

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mediumstats/lib/unixtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ArticleIDs projects the "postId" field out of a listing, in input
// order, one id per record. The result is also kept as the client's
// article id cache.
func (c *Client) ArticleIDs(listing []map[string]any) []string {
	ids := make([]string, 0, len(listing))
	for _, record := range listing {
		id, _ := record["postId"].(string)
		ids = append(ids, id)
	}
	c.articles = ids
	return ids
}

// CachedArticleIDs returns the ids stored by the last ArticleIDs call.
// Only fresh immediately after a listing fetch.
func (c *Client) CachedArticleIDs() []string {
	return c.articles
}

func (c *Client) graphql(ctx context.Context, query gqlRequest) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("graphql:%s", query.OperationName))
	defer span.End()

	variables, err := json.Marshal(query.Variables)
	if err == nil {
		span.SetAttributes(attribute.KeyValue{
			Key:   "variables",
			Value: attribute.StringValue(string(variables)),
		})
	}

	body, err := c.post(ctx, graphqlPath, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	post, err := decodeGraphqlPost(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, err
	}
	return post, nil
}

// ViewReadTotals fetches one article's daily view/read chart over
// [start, stop) and returns the raw "data.post" object.
func (c *Client) ViewReadTotals(ctx context.Context, postId string, start, stop time.Time) (map[string]any, error) {
	return c.graphql(ctx, chartQuery(
		postId,
		unixtime.ToMillis(start),
		unixtime.ToMillis(stop),
	))
}

// ReferrerTotals fetches one article's referrer breakdown.
func (c *Client) ReferrerTotals(ctx context.Context, postId string) (map[string]any, error) {
	return c.graphql(ctx, referrerQuery(postId))
}

// AllViewReadTotals fans out ViewReadTotals over a collection of ids,
// one request per id, strictly sequentially, preserving input order in
// the output. The first failing request aborts the whole batch.
func (c *Client) AllViewReadTotals(ctx context.Context, postIds []string, start, stop time.Time) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(postIds))
	for _, postId := range postIds {
		totals, err := c.ViewReadTotals(ctx, postId, start, stop)
		if err != nil {
			return nil, err
		}
		out = append(out, totals)
	}
	return out, nil
}

// AllReferrerTotals is AllViewReadTotals for referrer breakdowns.
func (c *Client) AllReferrerTotals(ctx context.Context, postIds []string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(postIds))
	for _, postId := range postIds {
		totals, err := c.ReferrerTotals(ctx, postId)
		if err != nil {
			return nil, err
		}
		out = append(out, totals)
	}
	return out, nil
}

type listingPage struct {
	Value  []map[string]any `json:"value"`
	Paging struct {
		Next *struct {
			// the cursor has been observed as both a string and a number
			To any `json:"to"`
		} `json:"next"`
	} `json:"paging"`
}

func (page listingPage) nextCursor() string {
	if page.Paging.Next == nil || page.Paging.Next.To == nil {
		return ""
	}
	switch to := page.Paging.Next.To.(type) {
	case string:
		return to
	case float64:
		return fmt.Sprintf("%.0f", to)
	default:
		return fmt.Sprint(to)
	}
}

// fetchListing pages through a cursor-based listing endpoint, feeding
// each "paging.next.to" cursor back as the "to" query parameter and
// concatenating records in page order until no cursor is returned. No
// re-sorting, no dedup: upstream order and duplicates are preserved.
func (c *Client) fetchListing(ctx context.Context, path string, params map[string]string) ([]map[string]any, error) {
	ctx, span := tracer.Start(ctx, "fetchListing")
	defer span.End()

	var records []map[string]any
	cursor := ""

	for pages := 0; ; pages++ {
		if c.maxPages > 0 && pages >= c.maxPages {
			err := fmt.Errorf("listing %s exceeded %d pages without a terminal cursor", path, c.maxPages)
			span.RecordError(err)
			span.SetStatus(codes.Error, "page cap exceeded")
			return nil, err
		}

		query := make(map[string]string, len(params)+1)
		for k, v := range params {
			query[k] = v
		}
		if cursor != "" {
			query["to"] = cursor
		}

		body, err := c.get(ctx, path, query)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch")
			return nil, err
		}

		var page listingPage
		err = decodePayload(body, &page)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to decode listing page")
			return nil, err
		}

		records = append(records, page.Value...)
		slog.DebugContext(
			ctx, "fetched listing page",
			"path", path,
			"records", len(page.Value),
			"total", len(records),
		)

		cursor = page.nextCursor()
		if cursor == "" {
			return records, nil
		}
	}
}
