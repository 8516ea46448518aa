package draftapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		PageSize: 25,
		Logger:   logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClientListPlayers_SendsCanonicalQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/players" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("searchTerm") != "jef" || q.Get("positionFilter") != "FLEX" || q.Get("sortKey") != "Name" ||
			q.Get("sortDirection") != "descending" || q.Get("scoringFormat") != "half_ppr" || q.Get("page") != "2" || q.Get("limit") != "25" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"players":[
			{"PlayerID": 22, "Name": "Justin Jefferson", "Position": "WR", "Team": "MIN", "AverageDraftPosition": 4.2,
			 "Stats": {"FantasyPoints": 210.4, "FantasyPointsPPR": 310.4}, "Projections": {}}
		],"totalPages": 3}}`))
	})

	params := query.Default()
	params.SearchTerm = "jef"
	params.PositionFilter = query.PositionFlex
	params.Sort = query.SortConfig{Key: query.SortByName, Direction: query.Descending}
	params.ScoringFormat = "half_ppr"
	params.Page = 2

	page, err := client.ListPlayers(context.Background(), params)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if page.TotalPages != 3 || len(page.Players) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if p := page.Players[0]; p.ID != 22 || p.Team != "MIN" || p.AverageDraftPosition != 4.2 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if got, ok := page.Players[0].Stats.Float("FantasyPointsPPR"); !ok || got != 310.4 {
		t.Fatalf("unexpected stats: got=%v ok=%v", got, ok)
	}
}

func TestClientErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantIs     error
		wantMsg    string
		wantDecode bool
	}{
		{
			name:    "error envelope with 200",
			status:  http.StatusOK,
			body:    `{"status":"error","message":"API key not found"}`,
			wantIs:  usecase.ErrProviderFailure,
			wantMsg: "API key not found",
		},
		{
			name:    "error envelope with 500",
			status:  http.StatusInternalServerError,
			body:    `{"status":"error","message":"upstream down"}`,
			wantIs:  usecase.ErrProviderFailure,
			wantMsg: "upstream down",
		},
		{
			name:   "plain 502",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			wantIs: usecase.ErrTransport,
		},
		{
			name:       "malformed success body",
			status:     http.StatusOK,
			body:       `{"status":"success","data":`,
			wantDecode: true,
		},
		{
			name:       "success without data",
			status:     http.StatusOK,
			body:       `{"status":"success"}`,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListPlayers(context.Background(), query.Default())
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantDecode {
				if errors.Is(err, usecase.ErrTransport) || errors.Is(err, usecase.ErrProviderFailure) {
					t.Fatalf("malformed body must not be classified as transport/provider: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantIs) {
				t.Fatalf("unexpected error class: got=%v want=%v", err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				var providerErr *usecase.ProviderError
				if !errors.As(err, &providerErr) || providerErr.Message != tt.wantMsg {
					t.Fatalf("unexpected provider message: %v", err)
				}
			}
		})
	}
}

func TestClientNetworkFailureIsTransport(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	client, err := NewClient(ClientConfig{BaseURL: "http://" + addr, Timeout: time.Second, Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.GetPlayerDetail(context.Background(), 1); !errors.Is(err, usecase.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClientGetPlayerDetail(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/player/22" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"news":null,"stats":{"FantasyPoints":12},"projections":null}}`))
	})

	detail, err := client.GetPlayerDetail(context.Background(), 22)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if detail.News == nil || len(detail.News) != 0 {
		t.Fatalf("expected empty news, got=%v", detail.News)
	}
	if got, ok := detail.Stats.Float("FantasyPoints"); !ok || got != 12 {
		t.Fatalf("unexpected stats: %v", detail.Stats)
	}
}

func TestClientCircuitBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: server.URL,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.ListPlayers(context.Background(), query.Default()); !errors.Is(err, usecase.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if _, err := client.ListPlayers(context.Background(), query.Default()); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("unexpected upstream calls: got=%d want=1", calls.Load())
	}
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "localhost:8080"} {
		if _, err := NewClient(ClientConfig{BaseURL: raw}); err == nil {
			t.Fatalf("expected error for base url %q", raw)
		}
	}
}
