package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
)

// FakeBlock is a block stored by FakeNotion; Raw keeps the appended JSON.
type FakeBlock struct {
	ID   string
	Type string
	Raw  map[string]any
}

type FakePage struct {
	ID       string
	Title    string
	ParentID string
	Icon     string
	CoverURL string
	Blocks   []FakeBlock
}

// FakeNotion is an in-memory Notion workspace served over httptest.
type FakeNotion struct {
	Server *httptest.Server

	mu       sync.Mutex
	pages    []*FakePage
	nextID   int
	Deleted  []string
	Requests []string
	// FailOn maps "METHOD /v1/path-prefix" to a forced HTTP status.
	FailOn map[string]int
}

func NewFakeNotion(t *testing.T) *FakeNotion {
	f := &FakeNotion{FailOn: make(map[string]int)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/search", f.search)
	mux.HandleFunc("GET /v1/blocks/{id}/children", f.listChildren)
	mux.HandleFunc("PATCH /v1/blocks/{id}/children", f.appendChildren)
	mux.HandleFunc("DELETE /v1/blocks/{id}", f.deleteBlock)
	mux.HandleFunc("POST /v1/pages", f.createPage)

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.Requests = append(f.Requests, r.Method+" "+r.URL.Path)
		for prefix, status := range f.FailOn {
			method, path, _ := strings.Cut(prefix, " ")
			if r.Method == method && strings.HasPrefix(r.URL.Path, path) {
				f.mu.Unlock()
				writeJSON(w, status, map[string]any{
					"object": "error", "status": status, "code": "internal_server_error", "message": "forced failure",
				})
				return
			}
		}
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeNotion) URL() string {
	return f.Server.URL
}

// AddPage seeds a page with n paragraph blocks and returns a snapshot of it.
// Later API calls do not change the returned value; use Page to re-read.
func (f *FakeNotion) AddPage(title string, n int) *FakePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &FakePage{ID: f.newID("page"), Title: title}
	for i := 0; i < n; i++ {
		p.Blocks = append(p.Blocks, FakeBlock{ID: f.newID("block"), Type: "paragraph"})
	}
	f.pages = append(f.pages, p)
	return p.snapshot()
}

func (p *FakePage) snapshot() *FakePage {
	cp := *p
	cp.Blocks = append([]FakeBlock(nil), p.Blocks...)
	return &cp
}

// BlockIDs lists the block ids in page order.
func (p *FakePage) BlockIDs() []string {
	ids := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

func (f *FakeNotion) Page(id string) *FakePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p := f.findPage(id); p != nil {
		return p.snapshot()
	}
	return nil
}

func (f *FakeNotion) PageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pages)
}

func (f *FakeNotion) CountRequests(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.Requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func (f *FakeNotion) DeletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Deleted...)
}

func (f *FakeNotion) newID(kind string) string {
	f.nextID++
	return fmt.Sprintf("%s-%04d", kind, f.nextID)
}

func (f *FakeNotion) findPage(id string) *FakePage {
	for _, p := range f.pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"object": "error", "status": 404, "code": "object_not_found", "message": "Could not find block with ID: " + id,
	})
}

func (f *FakeNotion) search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"object": "error", "code": "invalid_json", "message": err.Error()})
		return
	}

	f.mu.Lock()
	results := make([]map[string]any, 0)
	for _, p := range f.pages {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(req.Query)) {
			results = append(results, map[string]any{"object": "page", "id": p.ID})
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"object": "list", "results": results, "has_more": false})
}

func (f *FakeNotion) listChildren(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	size, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || size <= 0 || size > 100 {
		size = 100
	}

	f.mu.Lock()
	p := f.findPage(id)
	if p == nil {
		f.mu.Unlock()
		notFound(w, id)
		return
	}
	results := make([]map[string]any, 0, size)
	for i, b := range p.Blocks {
		if i == size {
			break
		}
		results = append(results, map[string]any{"object": "block", "id": b.ID, "type": b.Type})
	}
	hasMore := len(p.Blocks) > size
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"object": "list", "results": results, "has_more": hasMore})
}

func (f *FakeNotion) deleteBlock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		for i, b := range p.Blocks {
			if b.ID == id {
				p.Blocks = append(p.Blocks[:i], p.Blocks[i+1:]...)
				f.Deleted = append(f.Deleted, id)
				writeJSON(w, http.StatusOK, map[string]any{"object": "block", "id": id, "type": b.Type, "archived": true})
				return
			}
		}
	}
	notFound(w, id)
}

func (f *FakeNotion) createPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Parent struct {
			PageID string `json:"page_id"`
		} `json:"parent"`
		Icon struct {
			Emoji string `json:"emoji"`
		} `json:"icon"`
		Cover struct {
			External struct {
				URL string `json:"url"`
			} `json:"external"`
		} `json:"cover"`
		Properties struct {
			Title struct {
				Title []struct {
					Text struct {
						Content string `json:"content"`
					} `json:"text"`
				} `json:"title"`
			} `json:"title"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"object": "error", "code": "invalid_json", "message": err.Error()})
		return
	}

	title := ""
	for _, t := range req.Properties.Title.Title {
		title += t.Text.Content
	}

	f.mu.Lock()
	p := &FakePage{
		ID:       f.newID("page"),
		Title:    title,
		ParentID: req.Parent.PageID,
		Icon:     req.Icon.Emoji,
		CoverURL: req.Cover.External.URL,
	}
	f.pages = append(f.pages, p)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"object": "page", "id": p.ID})
}

func (f *FakeNotion) appendChildren(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		Children []map[string]any `json:"children"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"object": "error", "code": "invalid_json", "message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.findPage(id)
	if p == nil {
		notFound(w, id)
		return
	}
	results := make([]map[string]any, 0, len(req.Children))
	for _, raw := range req.Children {
		typ, _ := raw["type"].(string)
		b := FakeBlock{ID: f.newID("block"), Type: typ, Raw: raw}
		p.Blocks = append(p.Blocks, b)
		results = append(results, map[string]any{"object": "block", "id": b.ID, "type": typ})
	}
	writeJSON(w, http.StatusOK, map[string]any{"object": "list", "results": results})
}

// BlockText extracts the plain text of a text block appended through the API.
func (b FakeBlock) BlockText() string {
	content, ok := b.Raw[b.Type].(map[string]any)
	if !ok {
		return ""
	}
	parts, _ := content["rich_text"].([]any)
	out := ""
	for _, p := range parts {
		m, _ := p.(map[string]any)
		text, _ := m["text"].(map[string]any)
		s, _ := text["content"].(string)
		out += s
	}
	return out
}

// ImageURL returns the external URL of an appended image block.
func (b FakeBlock) ImageURL() string {
	img, ok := b.Raw["image"].(map[string]any)
	if !ok {
		return ""
	}
	ext, _ := img["external"].(map[string]any)
	url, _ := ext["url"].(string)
	return url
}
