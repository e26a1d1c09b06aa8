package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMakeClient(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		opts    []MakeClientOption
		wantErr bool
	}{
		{
			name:  "valid token",
			token: "ghp_sometoken",
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
		{
			name:    "blank token",
			token:   "   \n",
			wantErr: true,
		},
		{
			name:    "token with inner whitespace",
			token:   "ghp_some token",
			wantErr: true,
		},
		{
			name:    "unparseable base URL",
			token:   "ghp_sometoken",
			opts:    []MakeClientOption{MakeClientBaseUrl("://bad")},
			wantErr: true,
		},
		{
			name:    "base URL without scheme",
			token:   "ghp_sometoken",
			opts:    []MakeClientOption{MakeClientBaseUrl("api.github.com")},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := MakeClient(test.token, test.opts...)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot make client: %v", err)
			}
			if c == nil {
				t.Fatal("expected a client")
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotVersion, gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotVersion = r.Header.Get("X-GitHub-Api-Version")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := MakeClient("sometoken", MakeClientBaseUrl(srv.URL))
	if err != nil {
		t.Fatalf("cannot make client: %v", err)
	}
	if _, err := c.GetFollowers(context.Background()); err != nil {
		t.Fatalf("GetFollowers: %v", err)
	}

	if got, want := gotAuth, "Bearer sometoken"; got != want {
		t.Errorf("got %q but expected %q", got, want)
	}
	if got, want := gotAccept, "application/vnd.github+json"; got != want {
		t.Errorf("got %q but expected %q", got, want)
	}
	if got, want := gotVersion, "2022-11-28"; got != want {
		t.Errorf("got %q but expected %q", got, want)
	}
	if got, want := gotUserAgent, "ghfollowers"; got != want {
		t.Errorf("got %q but expected %q", got, want)
	}
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := MakeClient("sometoken",
		MakeClientBaseUrl(srv.URL),
		MakeClientTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("cannot make client: %v", err)
	}
	if _, err := c.GetFollowers(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRequestContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := MakeClient("sometoken", MakeClientBaseUrl(srv.URL))
	if err != nil {
		t.Fatalf("cannot make client: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.GetFollowers(ctx); err == nil {
		t.Fatal("expected an error")
	}
}

func TestCreateRoute(t *testing.T) {
	tests := []struct {
		name string
		base string
		ps   []param
		want string
	}{
		{
			name: "no params",
			base: "user/followers",
			want: "user/followers",
		},
		{
			name: "one param",
			base: "user/followers",
			ps:   []param{{"per_page", 30}},
			want: "user/followers?per_page=30",
		},
		{
			name: "two params",
			base: "user/followers",
			ps:   []param{{"per_page", 30}, {"page", 2}},
			want: "user/followers?per_page=30&page=2",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got, want := createRoute(test.base, test.ps...), test.want; got != want {
				t.Errorf("got %q but expected %q", got, want)
			}
		})
	}
}
