package patients

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dental-lab/internal/platform/civil"
	"dental-lab/internal/platform/validate"
	"dental-lab/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestService(t *testing.T, seed []Patient) *Service {
	t.Helper()
	st := store.New[Patient]("patients")
	st.Initialize(seed)
	return NewService(st, Options{})
}

func ids(items []Patient) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.PatientID)
	}
	return out
}

func TestFilterByStatus_UrgentAndUnknown(t *testing.T) {
	st := store.New[Patient]("patients")
	st.Initialize([]Patient{{
		PatientID: 1,
		Name:      "Ana Torres",
		Cases: []Case{
			{Type: "Crown", Tooth: "#8", Status: CaseUrgent, Date: civil.MustParse("2025-08-01")},
			{Type: "Inlay", Tooth: "#30", Status: CaseCompleted, Date: civil.MustParse("2025-07-01")},
		},
	}})

	snap := st.Snapshot()
	got := FilterByStatus(snap, CaseUrgent)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PatientID)

	assert.Empty(t, FilterByStatus(snap, "unknown-status"))
	assert.Empty(t, FilterByStatus(snap, "Urgent"))
}

func TestFilterByStatus_Seed(t *testing.T) {
	assert.Equal(t, []int{2, 4}, ids(FilterByStatus(Seed(), CaseUrgent)))
	assert.Equal(t, []int{1, 2}, ids(FilterByStatus(Seed(), CaseInProgress)))
	assert.Equal(t, Seed(), FilterByStatus(Seed(), ""))
}

func TestSearch_MatchesCases(t *testing.T) {
	assert.Equal(t, []int{1, 2}, ids(Search(Seed(), "crown")))
	assert.Equal(t, []int{2, 4}, ids(Search(Seed(), "URGENT")))
	assert.Equal(t, []int{3}, ids(Search(Seed(), "sarah")))
	assert.Equal(t, []int{4}, ids(Search(Seed(), "robert.davis@")))
	assert.Empty(t, Search(Seed(), "zirconia"))
}

func TestApply_CombinesWithAnd(t *testing.T) {
	got := Apply(Seed(), Filter{Query: "crown", Status: CaseCompleted})
	assert.Equal(t, []int{1}, ids(got))

	assert.Empty(t, Apply(Seed(), Filter{Query: "sarah", Status: CaseUrgent}))
}

func TestComputeStats_Seed(t *testing.T) {
	st := ComputeStats(Seed())
	assert.Equal(t, 5, st.TotalPatients)
	assert.Equal(t, 8, st.TotalCases)
	assert.Equal(t, map[CaseStatus]int{
		CaseCompleted:  3,
		CaseInProgress: 2,
		CaseUrgent:     2,
		CaseNew:        1,
	}, st.CasesByStatus)

	empty := ComputeStats(nil)
	assert.Equal(t, 0, empty.TotalPatients)
	assert.Empty(t, empty.CasesByStatus)
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService(t, Seed())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:      "  Lucia Fernandez ",
		BirthDate: "1990-03-14",
		Phone:     "555-404-1122",
		ShadeID:   "A3.5",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, p.PatientID)
	assert.Equal(t, "Lucia Fernandez", p.Name)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "1990-03-14", p.BirthDate.String())
	assert.Equal(t, "(555) 404-1122", p.Phone)
	assert.Equal(t, Shade("A3.5"), p.ShadeID)
	assert.NotNil(t, p.Cases)
	assert.Empty(t, p.Cases)
	assert.Equal(t, 6, svc.Store().Len())
}

func TestCreate_OptionalFieldsStayEmpty(t *testing.T) {
	svc := newTestService(t, nil)

	p, err := svc.Create(context.Background(), CreateInput{Name: "Tom Baker"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.PatientID)
	assert.Nil(t, p.BirthDate)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, "", p.Email)
}

func TestCreate_ShortPhoneIsMaskedNotRejected(t *testing.T) {
	svc := newTestService(t, nil)

	p, err := svc.Create(context.Background(), CreateInput{Name: "Ana", Phone: "555-1234"})
	require.NoError(t, err)
	assert.Equal(t, "(555) 123-4", p.Phone)
	assert.Equal(t, 1, svc.Store().Len())
}

func TestShade_AcceptsNumberOrString(t *testing.T) {
	var fromJSON []Patient
	require.NoError(t, json.Unmarshal([]byte(`[{"patientID":1,"shadeID":3.5},{"patientID":2,"shadeID":"B1"},{"patientID":3}]`), &fromJSON))
	require.Len(t, fromJSON, 3)
	assert.Equal(t, Shade("3.5"), fromJSON[0].ShadeID)
	assert.Equal(t, Shade("B1"), fromJSON[1].ShadeID)
	assert.Empty(t, fromJSON[2].ShadeID)

	var fromYAML []Patient
	require.NoError(t, yaml.Unmarshal([]byte("- patientID: 1\n  shadeID: 3\n- patientID: 2\n  shadeID: A2\n- patientID: 3\n  shadeID: null\n"), &fromYAML))
	require.Len(t, fromYAML, 3)
	assert.Equal(t, Shade("3"), fromYAML[0].ShadeID)
	assert.Equal(t, Shade("A2"), fromYAML[1].ShadeID)
	assert.Empty(t, fromYAML[2].ShadeID)

	var bad Patient
	assert.Error(t, json.Unmarshal([]byte(`{"shadeID":true}`), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("shadeID: [1, 2]\n"), &bad))

	out, err := json.Marshal(Patient{PatientID: 1, ShadeID: "3"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"shadeID":"3"`)
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{"name required", CreateInput{Name: "  "}, "name"},
		{"shade too long", CreateInput{Name: "A", ShadeID: "12345678901"}, "shadeID"},
		{"insurance too long", CreateInput{Name: "A", HealthInsuranceNumber: "123456789012345678901"}, "healthInsuranceNumber"},
		{"bad email", CreateInput{Name: "A", Email: "not-an-email"}, "email"},
		{"bad birth date", CreateInput{Name: "A", BirthDate: "14/03/1990"}, "birthDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, Seed())
			_, err := svc.Create(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var fe *validate.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, 5, svc.Store().Len())
		})
	}
}

func TestCreateAsync_NotifiesSubscribers(t *testing.T) {
	svc := newTestService(t, Seed())
	svc.delay = 10 * time.Millisecond

	lens := make(chan int, 4)
	sub := svc.Store().Subscribe(func(items []Patient) { lens <- len(items) })
	defer sub.Unsubscribe()
	assert.Equal(t, 5, <-lens)

	done := make(chan Patient, 1)
	err := svc.CreateAsync(context.Background(), CreateInput{Name: "Nina Patel"}, func(p Patient, err error) {
		assert.NoError(t, err)
		done <- p
	})
	require.NoError(t, err)

	select {
	case p := <-done:
		assert.Equal(t, 6, p.PatientID)
	case <-time.After(2 * time.Second):
		t.Fatal("create never completed")
	}
	assert.Equal(t, 6, <-lens)
}

func TestGetByID(t *testing.T) {
	svc := newTestService(t, Seed())

	p, err := svc.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Kim", p.Name)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
