package medium

// The two GraphQL documents below are replayed against the platform's
// internal stats endpoint. Their field names are part of the wire
// contract and must not be edited.

const chartQueryDocument = `query StatsPostChart($postId: ID!, $startAt: Long!, $endAt: Long!) {
  post(id: $postId) {
    id
    ...StatsPostChart_dailyStats
    ...StatsPostChart_dailyEarnings
    __typename
  }
}

fragment StatsPostChart_dailyStats on Post {
  dailyStats(startAt: $startAt, endAt: $endAt) {
    periodStartedAt
    views
    internalReferrerViews
    memberTtr
    __typename
  }
  __typename
}

fragment StatsPostChart_dailyEarnings on Post {
  earnings {
    dailyEarnings(startAt: $startAt, endAt: $endAt) {
      periodEndedAt
      periodStartedAt
      amount
      __typename
    }
    lastCommittedPeriodStartedAt
    __typename
  }
  __typename
}`

const referrerQueryDocument = `query StatsPostReferrersContainer($postId: ID!) {
  post(id: $postId) {
    id
    ...StatsPostReferrersExternalRow_post
    referrers {
      ...StatsPostReferrersContainer_referrers
      __typename
    }
    totalStats {
      ...StatsPostReferrersAll_totalStats
      __typename
    }
    __typename
  }
}

fragment StatsPostReferrersExternalRow_post on Post {
  title
  __typename
}

fragment StatsPostReferrersContainer_referrers on Referrer {
  postId
  sourceIdentifier
  totalCount
  type
  internal {
    postId
    collectionId
    profileId
    type
    __typename
  }
  search {
    domain
    keywords
    __typename
  }
  site {
    href
    title
    __typename
  }
  platform
  __typename
}

fragment StatsPostReferrersAll_totalStats on SummaryPostStat {
  views
  __typename
}`

type gqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

// chartQuery requests per-day view counts, internal-referrer views,
// member read time and earnings for one article over [startAt, endAt)
// in epoch milliseconds. Each call builds a fresh value, there is no
// shared template state.
func chartQuery(postId string, startAt, endAt int64) gqlRequest {
	return gqlRequest{
		OperationName: "StatsPostChart",
		Query:         chartQueryDocument,
		Variables: map[string]any{
			"postId":  postId,
			"startAt": startAt,
			"endAt":   endAt,
		},
	}
}

// referrerQuery requests the full referrer breakdown and aggregate view
// total for one article.
func referrerQuery(postId string) gqlRequest {
	return gqlRequest{
		OperationName: "StatsPostReferrersContainer",
		Query:         referrerQueryDocument,
		Variables: map[string]any{
			"postId": postId,
		},
	}
}
