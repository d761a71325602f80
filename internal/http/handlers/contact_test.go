package handlers

import (
	"net/http"
	"net/url"
	"testing"

	intconfig "ambulance/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSubmitContactStoresAndRedirects(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectExec("INSERT INTO contact_messages").
		WithArgs("Carol", "carol@x.com", "Need a quote").
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := newTestRouter()
	w := postForm(r, "/contact", url.Values{
		"name":    {"Carol"},
		"email":   {"carol@x.com"},
		"message": {"Need a quote"},
	}, nil)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?success=1" {
		t.Fatalf("location = %q, want /?success=1", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitContactMissingFieldIs400(t *testing.T) {
	r := newTestRouter()
	w := postForm(r, "/contact", url.Values{
		"name":  {"Carol"},
		"email": {"carol@x.com"},
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
