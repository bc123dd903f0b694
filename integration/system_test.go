//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

// Runs against a live server started with OPERATOR_USER/OPERATOR_PASSWORD
// matching E2E_OPERATOR_USER/E2E_OPERATOR_PASSWORD.
func TestSystem_E2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]any{
		"username": getenv("E2E_OPERATOR_USER", "manager"),
		"password": getenv("E2E_OPERATOR_PASSWORD", "password123"),
	}, &loginResp, 200)
	if loginResp.AccessToken == "" {
		t.Fatalf("empty access_token")
	}
	tok := loginResp.AccessToken

	id := 100000 + rand.Intn(900000)
	var created map[string]any
	doJSON(t, http.MethodPost, baseURL+"/items", tok, map[string]any{
		"id":       id,
		"name":     "E2E Lentils",
		"quantity": 3,
		"price":    "19.99",
	}, &created, 201)

	doJSON(t, http.MethodPost, baseURL+"/items", tok, map[string]any{
		"id":       id,
		"name":     "E2E Lentils",
		"quantity": 3,
		"price":    "19.99",
	}, nil, 409)

	var got map[string]any
	doJSON(t, http.MethodGet, baseURL+"/items/"+itoa(id), "", nil, &got, 200)
	if got["name"] != "E2E Lentils" {
		t.Fatalf("got=%#v", got)
	}

	var low struct {
		Items []map[string]any `json:"items"`
	}
	doJSON(t, http.MethodGet, baseURL+"/items/low-stock?threshold=5", "", nil, &low, 200)
	found := false
	for _, it := range low.Items {
		if it["name"] == "E2E Lentils" {
			found = true
		}
	}
	if !found {
		t.Fatalf("item missing from low stock: %#v", low.Items)
	}

	doJSON(t, http.MethodDelete, baseURL+"/items/"+itoa(id), tok, nil, nil, 200)
	doJSON(t, http.MethodGet, baseURL+"/items/"+itoa(id), "", nil, nil, 404)
}

func itoa(n int) string { return strconv.Itoa(n) }

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url, token string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
