package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchDocumentsDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/documents" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result_count":1,"documents":[{"title":"t","accuracy":9.5,"url":"u"}]}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).SearchDocuments(context.Background(), "질문")
	if err != nil {
		t.Fatalf("SearchDocuments: %v", err)
	}
	if resp.ResultCount != 1 || len(resp.Documents) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Documents[0].Accuracy != 9.5 {
		t.Fatalf("accuracy = %v; want 9.5", resp.Documents[0].Accuracy)
	}
}

func TestSearchDocumentsPassesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"bad query"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).SearchDocuments(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchDocuments: %v", err)
	}
	if resp.Error != "bad query" {
		t.Fatalf("error = %q; want %q", resp.Error, "bad query")
	}
}

func TestNonJSONBodyIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Summarize(context.Background(), "본문"); err == nil {
		t.Fatalf("expected decode failure for non-JSON body")
	}
}

func TestNonOKStatusIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Summarize(context.Background(), "본문"); err == nil {
		t.Fatalf("expected error for 502 response")
	}
}
