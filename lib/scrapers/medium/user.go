package medium

import (
	"context"
	"fmt"
	"time"

	"mediumstats/lib/unixtime"

	"go.opentelemetry.io/otel/codes"
)

// User grabs stats scoped to a user account. Both listing URLs derive
// from the username alone, so construction needs no network round trip.
type User struct {
	*Client
	Username string
}

func NewUser(creds Credentials, username string, opts ...Option) *User {
	return &User{
		Client:   NewClient(creds, opts...),
		Username: username,
	}
}

// SummaryStats fetches the lifetime per-article listing, following
// pagination cursors until exhausted.
func (u *User) SummaryStats(ctx context.Context) ([]map[string]any, error) {
	return u.fetchListing(
		ctx,
		fmt.Sprintf("/@%s/stats", u.Username),
		map[string]string{
			"filter": "not-response",
			"limit":  "50",
		},
	)
}

// Events fetches view/read-time buckets for the exact epoch-ms range.
// User accounts have no visitors metric, unlike publications.
func (u *User) Events(ctx context.Context, start, stop time.Time) ([]map[string]any, error) {
	ctx, span := tracer.Start(ctx, "user:Events")
	defer span.End()

	path := fmt.Sprintf(
		"/@%s/stats/total/%d/%d",
		u.Username,
		unixtime.ToMillis(start),
		unixtime.ToMillis(stop),
	)
	body, err := u.get(ctx, path, nil)
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
