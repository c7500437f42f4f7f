package changelog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteProvider_FetchChangelog(t *testing.T) {
	tests := map[string]struct {
		handler    http.HandlerFunc
		version    string
		want       string
		wantErrMsg string
	}{
		"renders requested version": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(sampleYAML))
			},
			version: "v0.9.1",
			want:    "### Added\n- Added feature Y\n\n### Fixed\n- Fixed bug X",
		},
		"server error": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			version:    "0.9.1",
			wantErrMsg: "unexpected status code: 500",
		},
		"not found": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			version:    "0.9.1",
			wantErrMsg: "unexpected status code: 404",
		},
		"invalid yaml": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("invalid: [yaml"))
			},
			version:    "0.9.1",
			wantErrMsg: "parsing changelog",
		},
		"unknown version": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(sampleYAML))
			},
			version:    "99.99.99",
			wantErrMsg: `version "99.99.99" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			p := &RemoteProvider{URL: server.URL, Client: server.Client()}
			got, err := p.FetchChangelog(context.Background(), tt.version)

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteProvider_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &RemoteProvider{URL: server.URL}
	_, err := p.FetchChangelog(ctx, "0.9.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoteProvider_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	p := &RemoteProvider{URL: server.URL}
	_, err := p.FetchChangelog(ctx, "0.9.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
