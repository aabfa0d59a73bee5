// SPDX-License-Identifier: MIT
package inquiries

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harishsolar/solarsite/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return NewStore(conn)
}

func TestSubmissionValidation(t *testing.T) {
	tests := []struct {
		name   string
		sub    Submission
		fields []string
	}{
		{"valid", Submission{Name: "Asha", Phone: "+91 80940 00802", Message: "Hi"}, nil},
		{"valid with product", Submission{Name: "Asha", Phone: "0141-2200000", Product: "hs-60"}, nil},
		{"missing name", Submission{Phone: "+91 8094000802"}, []string{"name"}},
		{"long name", Submission{Name: strings.Repeat("a", 101), Phone: "8094000802"}, []string{"name"}},
		{"letters in phone", Submission{Name: "Asha", Phone: "call me"}, []string{"phone"}},
		{"short phone", Submission{Name: "Asha", Phone: "123"}, []string{"phone"}},
		{"long message", Submission{Name: "Asha", Phone: "8094000802", Message: strings.Repeat("x", 2001)}, []string{"message"}},
		{"bad product", Submission{Name: "Asha", Phone: "8094000802", Product: "HS 60"}, []string{"product"}},
		{"everything wrong", Submission{}, []string{"name", "phone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := FieldErrors(tt.sub.Validate())
			if len(errs) != len(tt.fields) {
				t.Fatalf("expected errors for %v, got %v", tt.fields, errs)
			}
			for _, f := range tt.fields {
				if errs[f] == "" {
					t.Errorf("expected error for %s, got %v", f, errs)
				}
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"  Asha  ":                        "Asha",
		"<b>Need</b> lights":              "Need lights",
		"<script>alert(1)</script>Hello":  "Hello",
		"Roads & parks":                   "Roads & parks",
		"It's 40 units":                   "It's 40 units",
	}
	for in, want := range tests {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	sub := Submission{Name: " <i>Asha</i> ", Phone: " 8094000802 ", Message: "<p>Quote</p>", Product: " hs-90 "}
	sub.Normalize()

	if sub.Name != "Asha" || sub.Phone != "8094000802" || sub.Message != "Quote" || sub.Product != "hs-90" {
		t.Errorf("unexpected normalized submission %+v", sub)
	}
}

func TestFieldErrorsNonValidation(t *testing.T) {
	errs := FieldErrors(context.Canceled)
	if errs["form"] == "" {
		t.Error("expected form-level error")
	}
	if FieldErrors(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestStoreCreateAndList(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := store.Create(ctx, Submission{Name: name, Phone: "8094000802"}, "203.0.113.7"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 inquiries, got %d", len(all))
	}
	if all[0].Name != "Third" {
		t.Errorf("expected newest first, got %s", all[0].Name)
	}
	if all[0].IP != "203.0.113.7" {
		t.Errorf("expected IP recorded, got %s", all[0].IP)
	}

	limited, _ := store.List(ctx, 2)
	if len(limited) != 2 {
		t.Errorf("expected 2 inquiries with limit, got %d", len(limited))
	}

	n, _ := store.Count(ctx)
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}

func TestStoreMarkNotifiedAndDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	inq, err := store.Create(ctx, Submission{Name: "Asha", Phone: "8094000802", Product: "hs-60"}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.MarkNotified(ctx, inq.ID); err != nil {
		t.Fatalf("MarkNotified failed: %v", err)
	}
	list, _ := store.List(ctx, 0)
	if !list[0].Notified || list[0].ProductID != "hs-60" {
		t.Errorf("unexpected stored inquiry %+v", list[0])
	}

	if err := store.Delete(ctx, inq.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, inq.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting missing inquiry, got %v", err)
	}
}
