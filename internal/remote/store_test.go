package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceKey(i domain.Invoice) string { return i.ID }

func newInvoiceStore(t *testing.T, h http.HandlerFunc) *Store[domain.Invoice] {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewStore(NewClient(srv.URL, "secret-token", time.Second), "/api/invoices", invoiceKey, domain.ErrInvoiceNotFound)
}

func TestStore_Create_SendsBearerAndReturnsCanonical(t *testing.T) {
	s := newInvoiceStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/invoices", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		var in domain.Invoice
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "tmp-1", in.ID)

		in.ID = "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d"
		in.Number = "INV-20260101-ABC123"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	got, err := s.Create(context.Background(), domain.Invoice{ID: "tmp-1", Client: "Acme", Amount: 5000})

	require.NoError(t, err)
	assert.Equal(t, "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d", got.ID)
	assert.Equal(t, "INV-20260101-ABC123", got.Number)
	assert.Equal(t, int64(5000), got.Amount)
}

func TestStore_Update_RejectionCarriesServerMessage(t *testing.T) {
	s := newInvoiceStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/invoices/inv-1", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"payment exceeds outstanding balance"}`))
	})

	_, err := s.Update(context.Background(), domain.Invoice{ID: "inv-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerRejection)
	assert.Equal(t, "payment exceeds outstanding balance", domain.UserMessage(err))
}

func TestStore_Update_ConflictAndNotFound(t *testing.T) {
	status := http.StatusConflict
	s := newInvoiceStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"stale"}`))
	})

	_, err := s.Update(context.Background(), domain.Invoice{ID: "inv-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	status = http.StatusNotFound
	err = s.Delete(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestStore_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewStore(NewClient(url, "", time.Second), "/api/invoices", invoiceKey, domain.ErrInvoiceNotFound)

	_, err := s.Create(context.Background(), domain.Invoice{ID: "tmp"})

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, "could not reach the server, changes were reverted", domain.UserMessage(err))
}

func TestStore_List(t *testing.T) {
	s := newInvoiceStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"id":"a","amount":100,"balance":100},{"id":"b","amount":200}]`))
	})

	got, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].ID)
}

func TestStore_Delete_NoContent(t *testing.T) {
	s := newInvoiceStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, s.Delete(context.Background(), "inv-1"))
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "", time.Second).Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestStore_EmptySuccessBodyIsRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(*Store[domain.Invoice]) error
	}{
		{"create empty", "", func(s *Store[domain.Invoice]) error {
			_, err := s.Create(context.Background(), domain.Invoice{ID: "tmp-1"})
			return err
		}},
		{"create null", "null", func(s *Store[domain.Invoice]) error {
			_, err := s.Create(context.Background(), domain.Invoice{ID: "tmp-1"})
			return err
		}},
		{"update empty object", "{}", func(s *Store[domain.Invoice]) error {
			_, err := s.Update(context.Background(), domain.Invoice{ID: "inv-1"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newInvoiceStore(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			})

			err := tt.call(s)

			assert.ErrorIs(t, err, domain.ErrServerRejection)
			assert.Equal(t, "malformed response", domain.UserMessage(err))
		})
	}
}
