package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/golang/mock/gomock"
	"github.com/vokinneberg/askdesk/internal/qa"
)

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}
}

func TestProber_Check(t *testing.T) {
	tests := []struct {
		name       string
		resp       *http.Response
		err        error
		want       Result
		wantLog    string
		wantDetail string
	}{
		{
			name:    "backend up",
			resp:    response(http.StatusOK),
			want:    Reachable,
			wantLog: "Backend is reachable",
		},
		{
			name:       "backend returns error status",
			resp:       response(http.StatusBadRequest),
			want:       Unhealthy,
			wantLog:    "Backend is not responding correctly",
			wantDetail: "status=400",
		},
		{
			name:       "backend down",
			err:        errors.New("connection refused"),
			want:       Unreachable,
			wantLog:    "Failed to connect to backend",
			wantDetail: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := NewMockSender(ctrl)
			sender.EXPECT().Send(gomock.Any(), "teste").Return(tt.resp, tt.err).Times(1)

			var logs bytes.Buffer
			p := New(sender, slog.New(slog.NewTextHandler(&logs, nil)))

			testboil.FailTestIfDiff(t, p.Check(context.Background()), tt.want)
			testboil.AssertStringContains(t, logs.String(), tt.wantLog)
			if tt.wantDetail != "" {
				testboil.AssertStringContains(t, logs.String(), tt.wantDetail)
			}
		})
	}
}

func TestProber_Start(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		received <- body["pergunta"]
		w.Write([]byte(`{"resposta":"ok"}`))
	}))
	defer server.Close()

	client, err := qa.NewClient(server.URL+"/perguntar", server.Client())
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}

	New(client, slog.New(slog.NewTextHandler(io.Discard, nil))).Start(context.Background())

	select {
	case q := <-received:
		testboil.FailTestIfDiff(t, q, "teste")
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not send the probe question")
	}
}

func TestResult_String(t *testing.T) {
	testboil.FailTestIfDiff(t, Reachable.String(), "reachable")
	testboil.FailTestIfDiff(t, Unhealthy.String(), "unhealthy")
	testboil.FailTestIfDiff(t, Unreachable.String(), "unreachable")
	testboil.FailTestIfDiff(t, Result(9).String(), "unknown")
}
