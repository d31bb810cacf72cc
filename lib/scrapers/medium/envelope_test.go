package medium

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		fails bool
	}{
		{
			name: "prefixed",
			body: `])}while(1);</x>{"success":true,"payload":{"value":[{"postId":"p1"}]}}`,
		},
		{
			name: "unprefixed",
			body: `{"success":true,"payload":{"value":[{"postId":"p1"}]}}`,
		},
		{
			name:  "missing payload",
			body:  `])}while(1);</x>{"success":true}`,
			fails: true,
		},
		{
			name:  "not json",
			body:  `])}while(1);</x><html>maintenance</html>`,
			fails: true,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			var out struct {
				Value []map[string]any `json:"value"`
			}
			err := decodePayload([]byte(test.body), &out)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, out.Value, 1)
			require.Equal(t, "p1", out.Value[0]["postId"])
		})
	}
}

func TestDecodeGraphqlPost(t *testing.T) {
	post, err := decodeGraphqlPost([]byte(`{"data":{"post":{"id":"p1","title":"T"}}}`))
	require.NoError(t, err)
	require.Equal(t, "p1", post["id"])
	require.Equal(t, "T", post["title"])

	_, err = decodeGraphqlPost([]byte(`{"data":{}}`))
	require.Error(t, err)

	_, err = decodeGraphqlPost([]byte(`not json`))
	require.Error(t, err)
}
