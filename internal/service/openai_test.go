package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/user/cinematch/internal/config"
)

func newTestOpenAIService(t *testing.T, handler http.Handler) *OpenAIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAIService(&config.Config{
		OpenAIKey:     "sk-test",
		OpenAIBaseURL: srv.URL,
	})
}

func TestCreateResponseInjectsModelAndOmitsEmptyFields(t *testing.T) {
	svc := newTestOpenAIService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Fatalf("authorization header = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body not json: %v", err)
		}
		if payload["model"] != "gpt-4o" || payload["input"] != "recommend a movie" {
			t.Fatalf("unexpected payload: %v", payload)
		}
		// 空的可选字段不应出现在请求体中
		if _, ok := payload["instructions"]; ok {
			t.Fatal("empty instructions leaked into payload")
		}
		if _, ok := payload["previous_response_id"]; ok {
			t.Fatal("empty previous_response_id leaked into payload")
		}

		fmt.Fprint(w, `{"id":"resp_1","output_text":"Try The Matrix."}`)
	}))

	raw, err := svc.CreateResponse("recommend a movie", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("response not passed through as json: %v", err)
	}
	if resp["id"] != "resp_1" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestCreateResponseCarriesConversationState(t *testing.T) {
	svc := newTestOpenAIService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		json.Unmarshal(body, &payload)

		if payload["instructions"] != "be brief" || payload["previous_response_id"] != "resp_1" {
			t.Fatalf("conversation state missing: %v", payload)
		}
		fmt.Fprint(w, `{"id":"resp_2"}`)
	}))

	if _, err := svc.CreateResponse("and another", "be brief", "resp_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateResponseUpstreamError(t *testing.T) {
	svc := newTestOpenAIService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if _, err := svc.CreateResponse("hello", "", ""); err == nil {
		t.Fatal("expected error on upstream 401")
	}
}

func TestRetrieveResponse(t *testing.T) {
	svc := newTestOpenAIService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses/resp_9" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"id":"resp_9","status":"completed"}`)
	}))

	raw, err := svc.RetrieveResponse("resp_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) == "" {
		t.Fatal("empty passthrough body")
	}
}
