package practices

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dental-lab/internal/platform/validate"
	"dental-lab/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seed []Practice) *Service {
	t.Helper()
	st := store.New[Practice]("practices")
	st.Initialize(seed)
	svc := NewService(st, Options{})
	svc.now = func() time.Time { return time.Date(2025, 8, 10, 9, 30, 0, 0, time.UTC) }
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		Name:        "Harbor Dental",
		CompanyName: "Harbor Dental Partners LLC",
		Address:     "12 Pier Road, Bayside, CA 90216",
		Phone:       "555 111 2222",
		Email:       "hello@harbordental.com",
	}
}

func TestComputeStats_Seed(t *testing.T) {
	assert.Equal(t, Stats{
		TotalPractices:  6,
		ActivePractices: 6,
		TotalDoctors:    24,
		RecentWork:      69,
	}, ComputeStats(Seed()))
}

func TestComputeStats_ActiveAndSums(t *testing.T) {
	items := []Practice{
		{PracticeID: 1, Status: "Active", Doctors: 2, RecentCases: 5},
		{PracticeID: 2, Status: "Inactive", Doctors: 3, RecentCases: 1},
		{PracticeID: 3, Status: "active", Doctors: 0, RecentCases: 0},
	}
	st := ComputeStats(items)
	assert.Equal(t, 3, st.TotalPractices)
	assert.Equal(t, 1, st.ActivePractices)

	sum := 0
	for _, p := range items {
		sum += p.Doctors
	}
	assert.Equal(t, sum, st.TotalDoctors)
	assert.Equal(t, 6, st.RecentWork)

	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestSearch(t *testing.T) {
	got := Search(Seed(), "llc")
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].PracticeID, got[1].PracticeID, got[2].PracticeID})

	assert.Len(t, Search(Seed(), "Suburb Heights"), 1)
	assert.Len(t, Search(Seed(), "(555) 345"), 1)
	assert.Len(t, Search(Seed(), "ADVANCEDCARE"), 1)
	assert.Equal(t, Seed(), Search(Seed(), ""))
}

func TestApply_StatusIsExact(t *testing.T) {
	items := append(Seed(), Practice{PracticeID: 7, Name: "Closed Dental LLC", Status: "Inactive"})

	assert.Len(t, Apply(items, Filter{Status: "Active"}), 6)
	assert.Empty(t, Apply(items, Filter{Status: "active"}))

	got := Apply(items, Filter{Query: "llc", Status: "Inactive"})
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].PracticeID)
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t, Seed())

	totalsBefore := svc.Stats()
	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 7, p.PracticeID)
	assert.Equal(t, StatusActive, p.Status)
	assert.Equal(t, 0, p.Doctors)
	assert.Equal(t, 0, p.RecentCases)
	assert.Equal(t, "2025-08-10", p.PartnerSince.String())
	assert.Equal(t, "(555) 111-2222", p.Phone)

	totalsAfter := svc.Stats()
	assert.Equal(t, totalsBefore.TotalPractices+1, totalsAfter.TotalPractices)
	assert.Equal(t, totalsBefore.TotalDoctors, totalsAfter.TotalDoctors)
}

func TestService_Create_EmptyStoreStartsAtOne(t *testing.T) {
	svc := newTestService(t, nil)
	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, p.PracticeID)
}

func TestService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*CreateInput)
		field string
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }, "name"},
		{"missing company", func(in *CreateInput) { in.CompanyName = "" }, "companyName"},
		{"missing address", func(in *CreateInput) { in.Address = " " }, "address"},
		{"address too long", func(in *CreateInput) { in.Address = strings.Repeat("a", 201) }, "address"},
		{"missing phone", func(in *CreateInput) { in.Phone = "" }, "phone"},
		{"short phone", func(in *CreateInput) { in.Phone = "555-1234" }, "phone"},
		{"bad email", func(in *CreateInput) { in.Email = "hello@harbor" }, "email"},
		{"hours too long", func(in *CreateInput) { in.OpeningHours = strings.Repeat("x", 101) }, "openingHours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, Seed())
			in := validInput()
			tc.mod(&in)

			_, err := svc.Create(context.Background(), in)
			require.ErrorIs(t, err, ErrInvalidInput)

			var fe *validate.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, 6, svc.Store().Len())
		})
	}
}

func TestService_Create_EmailOptional(t *testing.T) {
	svc := newTestService(t, Seed())
	in := validInput()
	in.Email = ""

	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, p.Email)
}

func TestService_CreateAsync(t *testing.T) {
	svc := newTestService(t, Seed())
	svc.delay = 10 * time.Millisecond

	done := make(chan Practice, 1)
	require.NoError(t, svc.CreateAsync(context.Background(), validInput(), func(p Practice, err error) {
		assert.NoError(t, err)
		done <- p
	}))

	select {
	case p := <-done:
		got, err := svc.GetByID(p.PracticeID)
		require.NoError(t, err)
		assert.Equal(t, "Harbor Dental", got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("create never completed")
	}

	_, err := svc.GetByID(100)
	assert.ErrorIs(t, err, ErrNotFound)
}
