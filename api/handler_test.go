package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/api"
	"github.com/herald-dev/herald/store/memory"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := herald.New(herald.WithStore(memory.New()))
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(api.NewHandler(h, nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded) //nolint:errcheck // some responses have no body
	return resp, decoded
}

func createSubscription(t *testing.T, srv *httptest.Server) (subID, secret string) {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/subscriptions", map[string]any{
		"url":    "https://hooks.example.com/billing",
		"events": []string{"onAfterClientSignUp"},
		"active": true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %v", resp.StatusCode, body)
	}

	sub, ok := body["subscription"].(map[string]any)
	if !ok {
		t.Fatalf("missing subscription in response: %v", body)
	}
	secret, _ = body["secret"].(string)
	return sub["id"].(string), secret
}

func TestCreateAndGetSubscription(t *testing.T) {
	srv := newTestAPI(t)

	subID, secret := createSubscription(t, srv)
	if secret == "" {
		t.Fatal("create must reveal the secret once")
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/subscriptions/"+subID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: %d", resp.StatusCode)
	}
	if body["url"] != "https://hooks.example.com/billing" {
		t.Fatalf("url: %v", body["url"])
	}
	if _, leaked := body["secret"]; leaked {
		t.Fatal("get must not expose the secret")
	}
}

func TestCreateSubscriptionValidation(t *testing.T) {
	srv := newTestAPI(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/subscriptions", map[string]any{
		"url":    "not-a-url",
		"events": []string{"a"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetSubscriptionNotFound(t *testing.T) {
	srv := newTestAPI(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/subscriptions/hook_01h455vb4pex5vsknk084sn02q", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSubscriptionBadID(t *testing.T) {
	srv := newTestAPI(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/subscriptions/garbage", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateAndDeleteSubscription(t *testing.T) {
	srv := newTestAPI(t)
	subID, _ := createSubscription(t, srv)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/subscriptions/"+subID, map[string]any{
		"url":    "https://hooks.example.com/other",
		"events": []string{"a", "b"},
		"active": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %v", resp.StatusCode, body)
	}
	if body["url"] != "https://hooks.example.com/other" {
		t.Fatalf("url: %v", body["url"])
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/subscriptions/"+subID, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/subscriptions/"+subID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: %d", resp.StatusCode)
	}
}

func TestEnableDisable(t *testing.T) {
	srv := newTestAPI(t)
	subID, _ := createSubscription(t, srv)

	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/subscriptions/"+subID+"/disable", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("disable: %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/subscriptions/"+subID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: %d", resp.StatusCode)
	}
	if body["active"] != false {
		t.Fatal("should be inactive")
	}

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/subscriptions/"+subID+"/enable", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("enable: %d", resp.StatusCode)
	}
}

func TestRotateSecret(t *testing.T) {
	srv := newTestAPI(t)
	subID, original := createSubscription(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/subscriptions/"+subID+"/rotate-secret", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rotate: %d", resp.StatusCode)
	}
	rotated, _ := body["secret"].(string)
	if rotated == "" || rotated == original {
		t.Fatalf("rotated secret: %q", rotated)
	}
}

func TestListSubscriptionsFilter(t *testing.T) {
	srv := newTestAPI(t)
	subID, _ := createSubscription(t, srv)
	createSubscription(t, srv)

	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/subscriptions/"+subID+"/disable", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatal("disable failed")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/subscriptions?active=true", nil)
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()

	var subs []map[string]any
	if err := json.NewDecoder(listResp.Body).Decode(&subs); err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 active, got %d", len(subs))
	}
}

func TestListSubscriptionsOverflowingLimit(t *testing.T) {
	srv := newTestAPI(t)
	createSubscription(t, srv)
	createSubscription(t, srv)

	// A limit beyond int range must fall back to the default, not wrap.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/subscriptions?limit=999999999999999999999999999999", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: %d", resp.StatusCode)
	}
	var subs []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		t.Fatal(err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(subs))
	}
}

func TestSendTestMessageEndpoint(t *testing.T) {
	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer receiver.Close()

	srv := newTestAPI(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/subscriptions", map[string]any{
		"url":    receiver.URL,
		"events": []string{"a"},
		"active": true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d", resp.StatusCode)
	}
	subID := body["subscription"].(map[string]any)["id"].(string)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/subscriptions/"+subID+"/test", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("test message: %d %v", resp.StatusCode, body)
	}
	if body["result"] != "delivered" {
		t.Fatalf("result: %v", body["result"])
	}
}

func TestSendTestMessageInactive(t *testing.T) {
	srv := newTestAPI(t)
	subID, _ := createSubscription(t, srv)

	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/subscriptions/"+subID+"/disable", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatal("disable failed")
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/subscriptions/"+subID+"/test", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestAPI(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var entries []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 13 {
		t.Fatalf("expected 13 catalog entries, got %d", len(entries))
	}

	getResp, body := doJSON(t, http.MethodGet, srv.URL+"/events/onAfterClientSignUp", nil)
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get entry: %d", getResp.StatusCode)
	}
	if body["severity"] != "success" {
		t.Fatalf("severity: %v", body["severity"])
	}

	missing, _ := doJSON(t, http.MethodGet, srv.URL+"/events/nope", nil)
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}
