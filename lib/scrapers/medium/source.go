package medium

import (
	"context"
	"time"
)

// StatsSource is the capability shared by user and publication stat
// grabbers: list articles, then fetch per-article stats. Methods return
// plain JSON-compatible values so callers can serialize them directly.
type StatsSource interface {
	SummaryStats(ctx context.Context) ([]map[string]any, error)
	ArticleIDs(listing []map[string]any) []string
	ViewReadTotals(ctx context.Context, postId string, start, stop time.Time) (map[string]any, error)
	ReferrerTotals(ctx context.Context, postId string) (map[string]any, error)
	AllViewReadTotals(ctx context.Context, postIds []string, start, stop time.Time) ([]map[string]any, error)
	AllReferrerTotals(ctx context.Context, postIds []string) ([]map[string]any, error)
}

var (
	_ StatsSource = (*User)(nil)
	_ StatsSource = (*Publication)(nil)
)

// Articles lists every article the source knows about and fans out the
// daily view/read chart for each over [start, stop).
func Articles(ctx context.Context, src StatsSource, start, stop time.Time) ([]map[string]any, error) {
	listing, err := src.SummaryStats(ctx)
	if err != nil {
		return nil, err
	}
	return src.AllViewReadTotals(ctx, src.ArticleIDs(listing), start, stop)
}

// Referrers lists every article and fans out the referrer breakdown for
// each.
func Referrers(ctx context.Context, src StatsSource) ([]map[string]any, error) {
	listing, err := src.SummaryStats(ctx)
	if err != nil {
		return nil, err
	}
	return src.AllReferrerTotals(ctx, src.ArticleIDs(listing))
}
