package score

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/racer796/parameter"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 1))
}

// TestTokenRoundTrip tests that the server recovers the client's score
func TestTokenRoundTrip(t *testing.T) {
	rng := newRNG()
	for _, score := range []int{0, 1, 42, 255} {
		key, token := Encode(rng, score, UserAgent)
		got, err := Decode(key, token, UserAgent)
		if err != nil {
			t.Fatalf("Decode(%d): %v", score, err)
		}
		if got != score {
			t.Errorf("Expected %d, got %d", score, got)
		}
	}
}

// TestKeyLength tests the generated key size bounds
func TestKeyLength(t *testing.T) {
	rng := newRNG()
	for range 200 {
		n := len(GenerateKey(rng))
		if n <= parameter.SaveMinKeyLength || n > parameter.SaveMinKeyLength+parameter.SaveKeyExtraLength {
			t.Fatalf("Key length %d out of range", n)
		}
	}
}

// TestDecodeRejects tests tampered and malformed submissions
func TestDecodeRejects(t *testing.T) {
	key, token := Encode(newRNG(), 12, UserAgent)

	if _, err := Decode(key, token, "other-agent"); err != ErrTokenTamper {
		t.Errorf("Expected tamper error for a different agent, got %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	raw[100]++
	if _, err := Decode(key, base64.StdEncoding.EncodeToString(raw), UserAgent); err != ErrTokenTamper {
		t.Errorf("Expected tamper error for a modified byte, got %v", err)
	}

	if _, err := Decode(key, base64.StdEncoding.EncodeToString(raw[:10]), UserAgent); err != ErrTokenLength {
		t.Errorf("Expected length error, got %v", err)
	}

	short := base64.StdEncoding.EncodeToString([]byte("short"))
	if _, err := Decode(short, token, UserAgent); err != ErrKeyTooShort {
		t.Errorf("Expected short key error, got %v", err)
	}

	if _, err := Decode("%%%", token, UserAgent); err == nil {
		t.Error("Expected base64 error")
	}

	if _, err := Decode(key, token, ""); err != ErrEmptyAgent {
		t.Errorf("Expected empty agent error, got %v", err)
	}
}

// TestStoreRanking tests ordering and tie handling
func TestStoreRanking(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.Unix(1000, 0) }

	ranks := []int{s.Add("a", 10), s.Add("b", 30), s.Add("c", 10), s.Add("d", 20)}
	if want := []int{1, 1, 3, 2}; !equalInts(ranks, want) {
		t.Errorf("Expected ranks %v, got %v", want, ranks)
	}

	top := s.Top(3)
	names := []string{top[0].Name, top[1].Name, top[2].Name}
	if strings.Join(names, "") != "bda" {
		t.Errorf("Expected order b d a, got %v", names)
	}
	if s.Len() != 4 || len(s.Top(10)) != 4 {
		t.Errorf("Expected 4 records, got %d", s.Len())
	}
	if top[0].CreatedAt != 1000 {
		t.Errorf("Expected created_at 1000, got %d", top[0].CreatedAt)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestCleanName tests trimming and truncation
func TestCleanName(t *testing.T) {
	if got := CleanName("  pilot  "); got != "pilot" {
		t.Errorf("Expected pilot, got %q", got)
	}
	if got := CleanName("ÄÖÜäöüßabcdefgh"); got != "ÄÖÜäöüßabcde" {
		t.Errorf("Expected 12 runes, got %q", got)
	}
}

// TestServerSave tests the save endpoint
func TestServerSave(t *testing.T) {
	store := NewStore()
	srv := httptest.NewServer(NewRouter(store))
	defer srv.Close()

	key, token := Encode(newRNG(), 7, UserAgent)
	form := url.Values{"name": {"ace"}, "key": {key}, "token": {token}}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", UserAgent)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", res.StatusCode)
	}
	var ack SaveResponse
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		t.Fatal(err)
	}
	if !ack.OK || ack.Rank != 1 {
		t.Errorf("Unexpected ack %+v", ack)
	}
	if top := store.Top(1); len(top) != 1 || top[0].Score != 7 || top[0].Name != "ace" {
		t.Errorf("Unexpected store content %+v", top)
	}
}

// TestServerRejects tests invalid submissions
func TestServerRejects(t *testing.T) {
	store := NewStore()
	h := NewRouter(store)
	key, token := Encode(newRNG(), 7, UserAgent)

	cases := []url.Values{
		{"name": {""}, "key": {key}, "token": {token}},
		{"name": {"ace"}, "key": {key}, "token": {"AAAA"}},
	}
	for i, form := range cases {
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", UserAgent)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Case %d: expected 400, got %d", i, rec.Code)
		}
	}
	if store.Len() != 0 {
		t.Errorf("Expected nothing stored, got %d", store.Len())
	}
}

// TestClientServerRoundTrip tests the client against the reference server
func TestClientServerRoundTrip(t *testing.T) {
	store := NewStore()
	srv := httptest.NewServer(NewRouter(store))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	c.Save(ctx, "first", 5)
	c.Save(ctx, "second-pilot-name", 9)

	list := c.List(ctx)
	if len(list) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(list))
	}
	if list[0].Name != "second-pilot" {
		t.Errorf("Expected truncated name first, got %q", list[0].Name)
	}
	if list[0].Score != 9 || list[1].Score != 5 {
		t.Errorf("Expected scores 9, 5, got %d, %d", list[0].Score, list[1].Score)
	}
}

// TestClientSwallowsErrors tests that failures produce empty results
func TestClientSwallowsErrors(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/results" {
			_, _ = w.Write([]byte("not json"))
			return
		}
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer broken.Close()

	c := NewClient(broken.URL, time.Second)
	if got := c.List(context.Background()); got != nil {
		t.Errorf("Expected nil list, got %v", got)
	}
	c.Save(context.Background(), "x", 1)

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	c = NewClient(closed.URL, 100*time.Millisecond)
	if got := c.List(context.Background()); got != nil {
		t.Errorf("Expected nil list from an unreachable server, got %v", got)
	}
	c.Save(context.Background(), "x", 1)
}

// TestLeaderboardPage tests the HTML page and name escaping
func TestLeaderboardPage(t *testing.T) {
	store := NewStore()
	store.Add("<b>bold</b>", 3)
	h := NewRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected html, got %q", ct)
	}
	body := rec.Body.Bytes()
	if bytes.Contains(body, []byte("<b>bold</b>")) {
		t.Error("Expected the name to be escaped")
	}
	if !bytes.Contains(body, []byte("&lt;b&gt;bold&lt;/b&gt;")) {
		t.Error("Expected the escaped name in the table")
	}

	var buf bytes.Buffer
	if err := LeaderboardPage(nil).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No results yet") {
		t.Error("Expected the empty table message")
	}
}
