package omg

import (
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	one := openapi3.Servers{{URL: "https://one.example.com"}}
	two := openapi3.Servers{{URL: "https://one.example.com"}, {URL: "http://two.example.com:8080"}}

	tests := []struct {
		name     string
		servers  openapi3.Servers
		index    *int
		expected string
		errMsg   string
	}{
		{name: "no servers", servers: openapi3.Servers{}, expected: ""},
		{name: "no servers with index", servers: nil, index: intPtr(3), expected: ""},
		{name: "single default", servers: one, expected: "https://one.example.com"},
		{name: "single explicit", servers: one, index: intPtr(0), expected: "https://one.example.com"},
		{name: "single out of range", servers: one, index: intPtr(1), errMsg: "Min: 0, max: 0, got: 1"},
		{name: "many without index", servers: two, errMsg: "The property server_index must be set"},
		{name: "many second", servers: two, index: intPtr(1), expected: "http://two.example.com:8080"},
		{name: "negative", servers: two, index: intPtr(-1), errMsg: "Min: 0, max: 1, got: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBaseURL(tt.servers, Properties{ServerIndex: tt.index})
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConversion))
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBaseURLVariables(t *testing.T) {
	servers := openapi3.Servers{{
		URL: "https://{region}.example.com",
		Variables: map[string]*openapi3.ServerVariable{
			"region": {Default: "eu"},
		},
	}}

	_, err := ResolveBaseURL(servers, Properties{})
	require.Error(t, err)
	assert.Equal(t, "Variables in the server object are not supported at this time", err.Error())
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://x.example.com/pets", JoinURL("https://x.example.com", "/pets"))
	assert.Equal(t, "https://x.example.com//pets", JoinURL("https://x.example.com/", "/pets"))
	assert.Equal(t, "/pets", JoinURL("", "/pets"))
}
