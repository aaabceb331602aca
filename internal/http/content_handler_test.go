package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"crystalis-cms/internal/domain"
)

type mockBlogStore struct {
	items map[string]domain.Blog
}

func newMockBlogStore() *mockBlogStore {
	return &mockBlogStore{items: make(map[string]domain.Blog)}
}

func (m *mockBlogStore) List(_ context.Context) ([]domain.Blog, error) {
	out := make([]domain.Blog, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBlogStore) GetByID(_ context.Context, id string) (domain.Blog, error) {
	b, ok := m.items[id]
	if !ok {
		return domain.Blog{}, pgx.ErrNoRows
	}
	return b, nil
}

func (m *mockBlogStore) Create(_ context.Context, blog domain.Blog) error {
	m.items[blog.ID] = blog
	return nil
}

func (m *mockBlogStore) Update(_ context.Context, blog domain.Blog) error {
	if _, ok := m.items[blog.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.items[blog.ID] = blog
	return nil
}

func (m *mockBlogStore) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockInquiryStore struct {
	items map[string]domain.ContactInquiry
}

func newMockInquiryStore() *mockInquiryStore {
	return &mockInquiryStore{items: make(map[string]domain.ContactInquiry)}
}

func (m *mockInquiryStore) List(_ context.Context) ([]domain.ContactInquiry, error) {
	out := make([]domain.ContactInquiry, 0, len(m.items))
	for _, q := range m.items {
		out = append(out, q)
	}
	return out, nil
}

func (m *mockInquiryStore) GetByID(_ context.Context, id string) (domain.ContactInquiry, error) {
	q, ok := m.items[id]
	if !ok {
		return domain.ContactInquiry{}, pgx.ErrNoRows
	}
	return q, nil
}

func (m *mockInquiryStore) Create(_ context.Context, inquiry domain.ContactInquiry) error {
	m.items[inquiry.ID] = inquiry
	return nil
}

func (m *mockInquiryStore) Update(_ context.Context, inquiry domain.ContactInquiry) error {
	if _, ok := m.items[inquiry.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.items[inquiry.ID] = inquiry
	return nil
}

func (m *mockInquiryStore) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockStatsStore struct{}

func (m *mockStatsStore) Counts(_ context.Context) (domain.DashboardStats, error) {
	return domain.DashboardStats{Blogs: 3, Events: 1}, nil
}

func TestListBlogs_PublicEnvelope(t *testing.T) {
	f := newRouterFixture(t)
	f.blogs.items["b1"] = domain.Blog{
		ID:        "b1",
		Title:     "Caring for your heart",
		Status:    domain.PublishStatusPublished,
		CreatedAt: time.Now().UTC(),
	}

	w := f.do(t, http.MethodGet, "/blogs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if _, ok := body["success"]; ok {
		t.Fatalf("public list must not carry success flag: %v", body)
	}
	items, ok := body["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one blog under data, got %v", body["data"])
	}
}

func TestGetBlog_PublicDetail(t *testing.T) {
	f := newRouterFixture(t)
	f.blogs.items["b1"] = domain.Blog{
		ID:     "b1",
		Title:  "Caring for your heart",
		Status: domain.PublishStatusPublished,
	}

	w := f.do(t, http.MethodGet, "/blogs/b1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	item, ok := body["data"].(map[string]any)
	if !ok || item["title"] != "Caring for your heart" {
		t.Fatalf("unexpected payload: %v", body)
	}
}

func TestGetBlog_UnknownID(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/blogs/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateBlog_RequiresAuth(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/blogs", "", gin.H{"title": "Draft post"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(f.blogs.items) != 0 {
		t.Fatal("unauthorized write must not persist")
	}
}

func TestCreateBlog_Authorized(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(t, http.MethodPost, "/blogs", token, gin.H{"title": "Draft post"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	data := body["data"].(map[string]any)
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatal("expected minted id")
	}
	if data["status"] != domain.PublishStatusDraft {
		t.Fatalf("expected draft status, got %v", data["status"])
	}
	if _, ok := f.blogs.items[id]; !ok {
		t.Fatal("expected blog persisted")
	}
}

func TestDeleteBlog_UnknownID(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(t, http.MethodDelete, "/blogs", token, gin.H{"id": "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteBlog_MissingID(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(t, http.MethodDelete, "/blogs", token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitInquiry_Public(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/contact-us-details", "", gin.H{
		"name":    "John Doe",
		"email":   "john@email.com",
		"subject": "Appointment",
		"message": "I would like to book a visit.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(f.inquiries.items) != 1 {
		t.Fatalf("expected inquiry persisted, got %d", len(f.inquiries.items))
	}
	for _, q := range f.inquiries.items {
		if q.Status != domain.InquiryStatusNew {
			t.Fatalf("expected status New, got %q", q.Status)
		}
	}
}

func TestSubmitInquiry_MissingMessage(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/contact-us-details", "", gin.H{
		"name":  "John Doe",
		"email": "john@email.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDashboardStats_RequiresAuth(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/admin/dashboard/stats", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	token := f.login(t)
	w = f.do(t, http.MethodGet, "/admin/dashboard/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
}
