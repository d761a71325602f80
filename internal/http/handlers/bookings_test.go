package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	intconfig "ambulance/internal/config"
	"ambulance/internal/domain/models"
	"ambulance/internal/http/middleware"
	"ambulance/internal/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

var testSigner = session.Signer{Secret: []byte("test-secret")}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetSigner(testSigner)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.SessionAuth(testSigner))
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.POST("/contact", SubmitContact)
	r.POST("/book", CreateBooking)
	r.GET("/get_bookings", GetBookings)
	r.POST("/update_booking/:id", UpdateBooking)
	r.POST("/delete_booking/:id", DeleteBooking)
	return r
}

func sessionCookieFor(t *testing.T, username string) *http.Cookie {
	t.Helper()
	token, err := testSigner.Issue(username)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBookingsUnauthenticatedReturnsEmptyArray(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/get_bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("body = %q, want []", w.Body.String())
	}
}

func TestUpdateBookingUnauthenticatedIs403(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/update_booking/7", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestDeleteBookingUnauthenticatedIs403(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/delete_booking/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestCreateBookingUnauthenticatedRedirectsHome(t *testing.T) {
	r := newTestRouter()

	w := postForm(r, "/book", url.Values{"patient_name": {"Bob"}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("location = %q, want /", loc)
	}
}

func TestUpdateBookingIncompletePayloadIs400(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/update_booking/7",
		strings.NewReader(`{"patient_name":"Bob"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookieFor(t, "alice"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateBookingScopedToSessionPrincipal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectExec("UPDATE bookings").
		WithArgs("Bob", "A", "B", "123", int64(7), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/update_booking/7",
		strings.NewReader(`{"patient_name":"Bob","pickup_location":"A","destination":"B","contact_number":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookieFor(t, "alice"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 (body: %s)", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetBookingsReturnsOnlyOwnRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	cols := []string{"id", "username", "patient_name", "pickup_location", "destination", "contact_number"}
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "alice", "Bob", "A", "B", "123"))

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/get_bookings", nil)
	req.AddCookie(sessionCookieFor(t, "alice"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Username != "alice" || got[0].PatientName != "Bob" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
