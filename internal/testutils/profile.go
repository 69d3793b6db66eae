package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FullProfile returns a profile body with every displayed field populated.
func FullProfile() map[string]any {
	return map[string]any{
		"fullName":               "Asha Verma",
		"fatherName":             "Ravi Verma",
		"dateOfBirth":            "1990-04-12",
		"gender":                 "Female",
		"email":                  "asha@example.com",
		"mobileNumber":           "9876543210",
		"address":                "12 MG Road",
		"city":                   "Pune",
		"state":                  "Maharashtra",
		"preferredExamCity":      "Mumbai",
		"preferredShift":         "Morning",
		"currentOccupation":      "Teacher",
		"yearsOfExperience":      "7",
		"previousExamDuties":     "Invigilator, 2022",
		"photo":                  true,
		"signature":              true,
		"idProof":                true,
		"aadhaarNumber":          "1234-5678-9012",
		"accountHolderName":      "Asha Verma",
		"bankName":               "State Bank",
		"accountNumber":          "000123456789",
		"ifscCode":               "SBIN0000123",
		"branchName":             "Pune Camp",
		"bloodGroup":             "B+",
		"height":                 "162",
		"weight":                 "58",
		"chronicConditions":      "None",
		"allergies":              "Penicillin",
		"emergencyContactName":   "Ravi Verma",
		"emergencyContactNumber": "9123456780",
		"covidDeclaration":       true,
		"penaltyClause":          true,
	}
}

// Backend is a fake profile API that records every request it receives.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewBackend starts a fake profile API answering every request with status
// and body encoded as JSON. A nil body writes nothing.
func NewBackend(t *testing.T, status int, body any) *Backend {
	t.Helper()

	b := &Backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Clone(r.Context()))
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(b.Close)
	return b
}

// Requests returns the requests received so far.
func (b *Backend) Requests() []*http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*http.Request(nil), b.requests...)
}
