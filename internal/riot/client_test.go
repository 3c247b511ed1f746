package riot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("RGAPI-test-key", zerolog.Nop())
	require.NoError(t, err)
	client.baseURL = server.URL
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", zerolog.Nop())
	assert.Error(t, err)
}

func TestRegionalRoute(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"na1", "americas"},
		{"br1", "americas"},
		{"euw1", "europe"},
		{"eun1", "europe"},
		{"kr", "asia"},
		{"jp1", "asia"},
		{"vn2", "sea"},
		{"unknown", "americas"},
		{"", "americas"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RegionalRoute(tt.region), tt.region)
	}
}

func TestGetAccountByRiotID(t *testing.T) {
	var gotPath, gotToken string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Riot-Token")
		fmt.Fprint(w, `{"puuid":"abc-123","gameName":"Faker","tagLine":"KR1"}`)
	}))

	account, err := client.GetAccountByRiotID(context.Background(), "kr", "Faker", "KR1")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", account.PUUID)
	assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Faker/KR1", gotPath)
	assert.Equal(t, "RGAPI-test-key", gotToken)
}

func TestGetMatchHistoryQueryParams(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `["NA1_100","NA1_101"]`)
	}))

	ids, err := client.GetMatchHistory(context.Background(), "na1", "puuid", MatchHistoryOptions{
		Count: 50,
		Queue: 420,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NA1_100", "NA1_101"}, ids)
	assert.Contains(t, gotQuery, "count=50")
	assert.Contains(t, gotQuery, "queue=420")
	assert.Contains(t, gotQuery, "start=0")
}

func TestGetMatchHistoryCountClamped(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	}))

	_, err := client.GetMatchHistory(context.Background(), "na1", "puuid", MatchHistoryOptions{Count: 500})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "count=100")

	_, err = client.GetMatchHistory(context.Background(), "na1", "puuid", MatchHistoryOptions{})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "count=20")
}

func TestNotFoundMapsToErrNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetMatch(context.Background(), "na1", "NA1_404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateLimitRetriesAfterBackoff(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"metadata":{"matchId":"NA1_100"},"info":{"gameMode":"CLASSIC"}}`)
	}))

	match, err := client.GetMatch(context.Background(), "na1", "NA1_100")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "NA1_100", match.Metadata.MatchID)
	assert.Equal(t, "CLASSIC", match.Info.GameMode)
}

func TestRateLimitRespectsContextCancel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.GetMatch(ctx, "na1", "NA1_100")
		done <- err
	}()
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServerErrorSurfacesStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetTimeline(context.Background(), "na1", "NA1_100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGetTimelineDecodesFrames(t *testing.T) {
	payload := `{
		"metadata": {"matchId": "NA1_100"},
		"info": {
			"frameInterval": 60000,
			"frames": [
				{
					"timestamp": 60000,
					"participantFrames": {
						"1": {"participantId": 1, "totalGold": 500, "xp": 650}
					},
					"events": [
						{"type": "ELITE_MONSTER_KILL", "timestamp": 55000, "killerId": 3, "monsterType": "DRAGON", "monsterSubType": "FIRE_DRAGON"}
					]
				}
			]
		}
	}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, payload)
	}))

	tl, err := client.GetTimeline(context.Background(), "na1", "NA1_100")
	require.NoError(t, err)
	assert.EqualValues(t, 60000, tl.Info.FrameInterval)
	require.Len(t, tl.Info.Frames, 1)

	frame := tl.Info.Frames[0]
	assert.Equal(t, 500, frame.ParticipantFrames["1"].TotalGold)
	require.Len(t, frame.Events, 1)
	assert.Equal(t, "DRAGON", frame.Events[0].MonsterType)
}
