package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCallSpeaksJSONRPC10(t *testing.T) {
	var gotBody []byte
	var gotPath, gotUser, gotPass string
	var gotAuth bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, gotAuth = r.BasicAuth()
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result": "hello", "error": null, "id": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "secret")
	result, err := client.Call("getnewaddress")
	if err != nil {
		t.Fatal(err)
	}

	var address string
	if err := json.Unmarshal(result, &address); err != nil {
		t.Fatal(err)
	}
	if address != "hello" {
		t.Fatalf("unexpected result %q", address)
	}

	if !gotAuth || gotUser != "user" || gotPass != "secret" {
		t.Fatalf("basic auth not attached: auth=%v user=%q pass=%q", gotAuth, gotUser, gotPass)
	}
	if gotPath != "/" {
		t.Fatalf("unexpected request path %q", gotPath)
	}

	var req struct {
		JSONRPC string            `json:"jsonrpc"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatal(err)
	}
	if req.JSONRPC != "1.0" {
		t.Fatalf("expected jsonrpc 1.0, got %q", req.JSONRPC)
	}
	if req.Method != "getnewaddress" {
		t.Fatalf("unexpected method %q", req.Method)
	}
	if len(req.Params) != 0 {
		t.Fatalf("expected empty params, got %d", len(req.Params))
	}
}

func TestCallPassesParamsPositionally(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result": null, "error": null, "id": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "u", "p")
	if _, err := client.Call("sendtoaddress", "addr1", json.Number("0.5")); err != nil {
		t.Fatal(err)
	}

	var req struct {
		Params []json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatal(err)
	}
	if len(req.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(req.Params))
	}
	if string(req.Params[0]) != `"addr1"` {
		t.Fatalf("unexpected first param %s", req.Params[0])
	}
	// the amount must go over the wire as a bare JSON number
	if string(req.Params[1]) != `0.5` {
		t.Fatalf("unexpected second param %s", req.Params[1])
	}
}

func TestCallSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"result": null, "error": {"code": -32601, "message": "Method not found"}, "id": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "u", "p")
	if _, err := client.Call("nosuchmethod"); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestWalletClientScopesURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"result": 0, "error": null, "id": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "u", "p").WalletClient("demo")
	if _, err := client.GetBalance(); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/wallet/demo" {
		t.Fatalf("expected /wallet/demo, got %q", gotPath)
	}
}

func TestDefaultRPC(t *testing.T) {
	if got := DefaultRPC(NetworkBitcoin); got != MainnetRPC {
		t.Fatalf("unexpected mainnet endpoint %q", got)
	}
	if got := DefaultRPC(NetworkTestnet); got != TestnetRPC {
		t.Fatalf("unexpected testnet endpoint %q", got)
	}
	if got := DefaultRPC(NetworkRegtest); got != RegtestRPC {
		t.Fatalf("unexpected regtest endpoint %q", got)
	}
}
