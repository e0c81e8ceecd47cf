package router_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dental-lab/internal/domain/doctors"
	"dental-lab/internal/domain/patients"
	"dental-lab/internal/domain/practices"
	"dental-lab/internal/platform/metrics"
	"dental-lab/internal/router"
	"dental-lab/internal/store"
)

type fixture struct {
	url       string
	doctors   *store.Store[doctors.Doctor]
	practices *store.Store[practices.Practice]
	patients  *store.Store[patients.Patient]
}

func newServer(t *testing.T) fixture {
	t.Helper()

	ds := store.New[doctors.Doctor]("doctors")
	ds.Initialize(doctors.Seed())
	ps := store.New[practices.Practice]("practices")
	ps.Initialize(practices.Seed())
	pts := store.New[patients.Patient]("patients")
	pts.Initialize(patients.Seed())

	m := metrics.New()
	metrics.Observe(m, ds)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Doctors:   doctors.NewService(ds, doctors.Options{CreateDelay: 5 * time.Millisecond}),
		Practices: practices.NewService(ps, practices.Options{}),
		Patients:  patients.NewService(pts, patients.Options{}),
		Metrics:   m,
	}))
	t.Cleanup(ts.Close)

	return fixture{url: ts.URL, doctors: ds, practices: ps, patients: pts}
}

func TestHTTP_Health(t *testing.T) {
	f := newServer(t)

	st, body := doReq(t, f.url, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Doctors_SearchCreateAndGet(t *testing.T) {
	f := newServer(t)

	// 1) Búsqueda
	{
		st, body := doReq(t, f.url, "GET", "/doctors?q=Dr.%20Sarah", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing doctors, got %d body=%s", st, string(body))
		}
		var got []doctors.Doctor
		mustDecode(t, body, &got)
		if len(got) != 1 || got[0].Name != "Dr. Sarah Johnson" {
			t.Fatalf("expected only Dr. Sarah Johnson, got %+v", got)
		}
	}

	// 2) Alta: espera la latencia simulada y devuelve el doctor con id nuevo
	var created doctors.Doctor
	{
		st, body := doReq(t, f.url, "POST", "/doctors", map[string]any{
			"fullName": "Dr. Laura Green",
			"username": "lgreen",
			"email":    "laura@green.com",
			"phone":    "5551234567",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating doctor, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &created)
		if created.DoctorID != 9 || created.Phone != "(555) 123-4567" {
			t.Fatalf("unexpected created doctor: %+v", created)
		}
	}

	// 3) Se puede leer por id y la colección creció
	{
		st, body := doReq(t, f.url, "GET", "/doctors/9", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get doctor, got %d body=%s", st, string(body))
		}
		if f.doctors.Len() != 9 {
			t.Fatalf("expected 9 doctors, got %d", f.doctors.Len())
		}
	}

	// 4) Errores
	if st, _ := doReq(t, f.url, "GET", "/doctors/999", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown doctor, got %d", st)
	}
	if st, _ := doReq(t, f.url, "GET", "/doctors/abc", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", st)
	}
}

func TestHTTP_Doctors_ValidationIs400(t *testing.T) {
	f := newServer(t)

	st, body := doReq(t, f.url, "POST", "/doctors", map[string]any{
		"fullName": "Dr. X",
		"username": "bad user",
		"email":    "x@x.com",
		"phone":    "5551234567",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
	var er struct {
		Field string `json:"field"`
	}
	mustDecode(t, body, &er)
	if er.Field != "username" {
		t.Fatalf("expected username field error, got %q", er.Field)
	}
	if f.doctors.Len() != 8 {
		t.Fatalf("store must not change on invalid input, got %d", f.doctors.Len())
	}

	if st, _ := doReq(t, f.url, "POST", "/doctors", "not an object"); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", st)
	}
}

func TestHTTP_Stats(t *testing.T) {
	f := newServer(t)

	st, body := doReq(t, f.url, "GET", "/practices/stats", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var ps practices.Stats
	mustDecode(t, body, &ps)
	if ps.TotalPractices != 6 || ps.TotalDoctors != 24 {
		t.Fatalf("unexpected practice stats: %+v", ps)
	}

	_, body = doReq(t, f.url, "GET", "/patients/stats", nil)
	var pts patients.Stats
	mustDecode(t, body, &pts)
	if pts.TotalPatients != 5 || pts.CasesByStatus[patients.CaseUrgent] != 2 {
		t.Fatalf("unexpected patient stats: %+v", pts)
	}

	_, body = doReq(t, f.url, "GET", "/doctors/stats", nil)
	var ds doctors.Stats
	mustDecode(t, body, &ds)
	if ds.TotalDoctors != 8 || ds.ActiveDoctors != 8 {
		t.Fatalf("unexpected doctor stats: %+v", ds)
	}
}

func TestHTTP_Practices_FilterAndCreate(t *testing.T) {
	f := newServer(t)

	st, body := doReq(t, f.url, "GET", "/practices?q=llc&status=Active", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var got []practices.Practice
	mustDecode(t, body, &got)
	if len(got) != 3 {
		t.Fatalf("expected 3 LLC practices, got %d", len(got))
	}

	st, body = doReq(t, f.url, "POST", "/practices", map[string]any{
		"name":        "Harbor Dental",
		"companyName": "Harbor Dental Partners LLC",
		"address":     "12 Pier Road",
		"phone":       "555 111 2222",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}
	var p practices.Practice
	mustDecode(t, body, &p)
	if p.PracticeID != 7 || p.Status != practices.StatusActive {
		t.Fatalf("unexpected practice: %+v", p)
	}
}

func TestHTTP_Patients_StatusFilter(t *testing.T) {
	f := newServer(t)

	_, body := doReq(t, f.url, "GET", "/patients?status=urgent", nil)
	var got []patients.Patient
	mustDecode(t, body, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 urgent patients, got %d", len(got))
	}

	_, body = doReq(t, f.url, "GET", "/patients?status=unknown-status", nil)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty array, got %s", string(body))
	}

	st, body := doReq(t, f.url, "POST", "/patients", map[string]any{
		"name":      "Lucia Fernandez",
		"birthDate": "1990-03-14",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}
	if f.patients.Len() != 6 {
		t.Fatalf("expected 6 patients, got %d", f.patients.Len())
	}
}

func TestHTTP_Stream_PushesNewCollections(t *testing.T) {
	f := newServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", f.url+"/patients/stream", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	sc := bufio.NewScanner(res.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	first := readEvent(t, sc)
	if len(first) != 5 {
		t.Fatalf("expected initial 5 patients, got %d", len(first))
	}

	if st, body := doReq(t, f.url, "POST", "/patients", map[string]any{"name": "Nina Patel"}); st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	next := readEvent(t, sc)
	if len(next) != 6 || next[5].Name != "Nina Patel" {
		t.Fatalf("expected 6 patients ending with Nina Patel, got %d", len(next))
	}

	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for f.patients.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("stream subscription was not released")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHTTP_MetricsAndSwagger(t *testing.T) {
	f := newServer(t)

	st, body := doReq(t, f.url, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `dental_lab_collection_size{collection="doctors"} 8`) {
		t.Fatalf("expected doctors size gauge, got %d", st)
	}

	st, body = doReq(t, f.url, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"/doctors/stream"`) {
		t.Fatalf("expected swagger doc, got %d body=%s", st, string(body))
	}
}

func readEvent(t *testing.T, sc *bufio.Scanner) []patients.Patient {
	t.Helper()

	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var items []patients.Patient
		mustDecode(t, []byte(strings.TrimPrefix(line, "data: ")), &items)
		return items
	}
	t.Fatalf("stream closed: %v", sc.Err())
	return nil
}

func mustDecode(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
