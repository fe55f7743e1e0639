package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
	"github.com/tbourn/go-medtrack-backend/internal/services"
)

func TestCreateMedication(t *testing.T) {
	med := &stubMedSvc{
		createFn: func(_ context.Context, in domain.MedicationInput) (*domain.Medication, error) {
			if in.Name == "Taken" {
				return nil, fmt.Errorf("%w (unique)", repo.ErrDuplicateName)
			}
			if in.DosageQuantity <= 0 {
				return nil, fmt.Errorf("%w: %w", repo.ErrInvalidMedication, domain.ErrInvalidDosage)
			}
			return &domain.Medication{ID: 31, Name: in.Name, DosageQuantity: in.DosageQuantity, DosageUnit: in.DosageUnit, Route: in.Route}, nil
		},
	}
	r := newTestRouter(New(med, nil, nil, nil))

	t.Run("created", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/medications", map[string]any{
			"name": "Ibuprofen", "dosage_quantity": 1, "dosage_unit": "tablet", "route": "oral",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "/api/v1/medications/31" {
			t.Fatalf("Location = %q", loc)
		}
		var m domain.Medication
		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil || m.ID != 31 || m.Name != "Ibuprofen" {
			t.Fatalf("body = %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/medications", "{")
		if w.Code != http.StatusBadRequest || decodeErr(t, w).Code != ErrCodeBadRequest {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/medications", map[string]any{"name": "X", "dosage_unit": "mg"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/medications", map[string]any{
			"name": "Zero", "dosage_quantity": 0, "dosage_unit": "mg", "route": "oral",
		})
		if w.Code != http.StatusBadRequest || decodeErr(t, w).Code != ErrCodeInvalidMedication {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/medications", map[string]any{
			"name": "Taken", "dosage_quantity": 1, "dosage_unit": "mg", "route": "oral",
		})
		if w.Code != http.StatusConflict || decodeErr(t, w).Code != ErrCodeDuplicateName {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestListMedications_ETag(t *testing.T) {
	stats := services.CatalogStats{Medications: 2, MaxMedicationID: 2}
	med := &stubMedSvc{
		statsFn: func(context.Context) (services.CatalogStats, error) { return stats, nil },
		listFn: func(context.Context) ([]domain.Medication, error) {
			return []domain.Medication{{ID: 2, Name: "Aspirin"}, {ID: 1, Name: "Ibuprofen"}}, nil
		},
	}
	r := newTestRouter(New(med, nil, nil, nil))

	w := do(t, r, http.MethodGet, "/api/v1/medications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if etag != `W/"medications:0-2-2-0-0"` {
		t.Fatalf("ETag = %q", etag)
	}
	var resp ListMedicationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Count != 2 || resp.Medications[0].Name != "Aspirin" {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/v1/medications", nil, "If-None-Match", etag)
	if w.Code != http.StatusNotModified {
		t.Fatalf("want 304, got %d", w.Code)
	}
	if med.listCalls != 1 {
		t.Fatalf("304 must not list, calls = %d", med.listCalls)
	}

	stats.Medications, stats.MaxMedicationID = 3, 3
	w = do(t, r, http.MethodGet, "/api/v1/medications", nil, "If-None-Match", etag)
	if w.Code != http.StatusOK {
		t.Fatalf("stale ETag should refetch, got %d", w.Code)
	}
}

func TestListMedications_StatsFailureStillLists(t *testing.T) {
	med := &stubMedSvc{
		statsFn: func(context.Context) (services.CatalogStats, error) {
			return services.CatalogStats{}, errors.New("stats")
		},
		listFn: func(context.Context) ([]domain.Medication, error) { return []domain.Medication{}, nil },
	}
	r := newTestRouter(New(med, nil, nil, nil))

	w := do(t, r, http.MethodGet, "/api/v1/medications", nil)
	if w.Code != http.StatusOK || w.Header().Get("ETag") != "" {
		t.Fatalf("status = %d etag = %q", w.Code, w.Header().Get("ETag"))
	}
}

func TestListMedications_StorageUnavailable(t *testing.T) {
	med := &stubMedSvc{
		listFn: func(context.Context) ([]domain.Medication, error) {
			return nil, fmt.Errorf("%w: database is closed", repo.ErrStorageUnavailable)
		},
	}
	r := newTestRouter(New(med, nil, nil, nil))

	w := do(t, r, http.MethodGet, "/api/v1/medications", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}
	if er := decodeErr(t, w); er.RequestID != "rid-test" || er.Code != ErrCodeUnavailable {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}

func TestGetMedication(t *testing.T) {
	med := &stubMedSvc{
		getFn: func(_ context.Context, id int64) (*domain.Medication, error) {
			if id == 7 {
				return &domain.Medication{ID: 7, Name: "Metformin"}, nil
			}
			return nil, services.ErrMedicationNotFound
		},
	}
	r := newTestRouter(New(med, nil, nil, nil))

	if w := do(t, r, http.MethodGet, "/api/v1/medications/7", nil); w.Code != http.StatusOK {
		t.Fatalf("found: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/medications/8", nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing: %d", w.Code)
	}
	for _, bad := range []string{"0", "-1", "abc"} {
		w := do(t, r, http.MethodGet, "/api/v1/medications/"+bad, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("id %q: %d", bad, w.Code)
		}
	}
}

func TestListMedicationsWithDescriptions(t *testing.T) {
	med := &stubMedSvc{
		joinedFn: func(context.Context) ([]domain.MedicationWithDescription, error) {
			return []domain.MedicationWithDescription{
				{Medication: domain.Medication{ID: 1, Name: "Ibuprofen"}, Description: &domain.Description{MedicationID: 1, Letters: ptr("IB")}},
				{Medication: domain.Medication{ID: 2, Name: "Plain"}},
			}, nil
		},
	}
	r := newTestRouter(New(med, nil, nil, nil))

	w := do(t, r, http.MethodGet, "/api/v1/medications-with-descriptions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if etag := w.Header().Get("ETag"); etag == "" {
		t.Fatal("missing ETag")
	}
	var resp ListJoinedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Count != 2 {
		t.Fatalf("body = %s", w.Body.String())
	}
	if resp.Items[0].Description == nil || *resp.Items[0].Description.Letters != "IB" || resp.Items[1].Description != nil {
		t.Fatalf("descriptions not carried: %s", w.Body.String())
	}
}
