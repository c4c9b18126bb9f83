package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"advocate-directory/internal/cache"
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdvocateRepository is an in-memory stand-in for the gorm
// repository, tracking call counts so tests can observe whether the
// cache short-circuited the database.
type fakeAdvocateRepository struct {
	advocates   []entity.Advocate
	searchCalls int
	createErr   error
	failUpserts map[string]error
	nextID      int
}

func (f *fakeAdvocateRepository) FindAll(_ context.Context) ([]entity.Advocate, error) {
	return f.advocates, nil
}

func (f *fakeAdvocateRepository) Search(_ context.Context, _ *entity.AdvocateFilter) ([]entity.Advocate, int64, error) {
	f.searchCalls++
	return f.advocates, int64(len(f.advocates)), nil
}

func (f *fakeAdvocateRepository) Create(_ context.Context, advocate *entity.Advocate) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	advocate.ID = f.nextID
	f.advocates = append(f.advocates, *advocate)
	return nil
}

func (f *fakeAdvocateRepository) Upsert(_ context.Context, advocate *entity.Advocate) (*entity.Advocate, bool, error) {
	if err, ok := f.failUpserts[advocate.FirstName+" "+advocate.LastName]; ok {
		return nil, false, err
	}
	for i := range f.advocates {
		if f.advocates[i].FirstName == advocate.FirstName && f.advocates[i].LastName == advocate.LastName {
			advocate.ID = f.advocates[i].ID
			f.advocates[i] = *advocate
			return advocate, false, nil
		}
	}
	f.nextID++
	advocate.ID = f.nextID
	f.advocates = append(f.advocates, *advocate)
	return advocate, true, nil
}

func newTestUsecase(repo *fakeAdvocateRepository) usecase.AdvocateUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return usecase.NewAdvocateUsecase(log, repo, cache.NewMemoryCache(5*time.Minute))
}

func intPtr(v int) *int { return &v }

func TestSearchAdvocatesCacheAside(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{
		advocates: []entity.Advocate{{ID: 1, FirstName: "Alice", LastName: "Smith", City: "Boston", Specialties: []string{"Anxiety"}}},
	}
	u := newTestUsecase(repo)
	ctx := context.Background()
	filter := &entity.AdvocateFilter{City: "Boston"}

	first, err := u.SearchAdvocates(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchCalls)

	// An equivalent filter must be served from the cache.
	second, err := u.SearchAdvocates(ctx, &entity.AdvocateFilter{City: "Boston"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchCalls, "second equivalent search must not hit the repository")
	assert.Equal(t, first.Advocates, second.Advocates)
	assert.Equal(t, first.Total, second.Total)

	// A different filter misses and queries again.
	_, err = u.SearchAdvocates(ctx, &entity.AdvocateFilter{City: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.searchCalls)
}

func TestSearchAdvocatesEchoesPagination(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{}
	u := newTestUsecase(repo)

	result, err := u.SearchAdvocates(context.Background(), &entity.AdvocateFilter{Limit: intPtr(10), Offset: intPtr(20)})
	require.NoError(t, err)
	require.NotNil(t, result.Limit)
	require.NotNil(t, result.Offset)
	assert.Equal(t, 10, *result.Limit)
	assert.Equal(t, 20, *result.Offset)
}

func TestCreateAdvocateInvalidatesCache(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{}
	u := newTestUsecase(repo)
	ctx := context.Background()
	filter := &entity.AdvocateFilter{}

	_, err := u.SearchAdvocates(ctx, filter)
	require.NoError(t, err)
	require.Equal(t, 1, repo.searchCalls)

	_, err = u.CreateAdvocate(ctx, &dto.CreateAdvocateRequest{
		FirstName:         "Alice",
		LastName:          "Smith",
		City:              "Boston",
		Degree:            "MD",
		Specialties:       []string{"Anxiety"},
		YearsOfExperience: 5,
		PhoneNumber:       5551234567,
	})
	require.NoError(t, err)

	// The write flushed the cache, so the same filter queries again and
	// observes the new row.
	result, err := u.SearchAdvocates(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.searchCalls)
	assert.Equal(t, int64(1), result.Total)
}

func TestCreateAdvocateDuplicateName(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "advocates_unique_name_idx"},
	}
	u := newTestUsecase(repo)

	_, err := u.CreateAdvocate(context.Background(), &dto.CreateAdvocateRequest{
		FirstName: "Alice", LastName: "Smith", City: "Boston", Degree: "MD",
		Specialties: []string{"Anxiety"}, YearsOfExperience: 5, PhoneNumber: 5551234567,
	})
	assert.ErrorIs(t, err, usecase.ErrAdvocateExists)
}

func TestCreateAdvocateSurfacesInfrastructureError(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{createErr: errors.New("connection refused")}
	u := newTestUsecase(repo)

	_, err := u.CreateAdvocate(context.Background(), &dto.CreateAdvocateRequest{
		FirstName: "Alice", LastName: "Smith", City: "Boston", Degree: "MD",
		Specialties: []string{"Anxiety"}, YearsOfExperience: 5, PhoneNumber: 5551234567,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrAdvocateExists)
}

func TestSeedAdvocatesStats(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{}
	u := newTestUsecase(repo)
	ctx := context.Background()

	dataset := entity.BootstrapAdvocates()

	first, err := u.SeedAdvocates(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(dataset), first.Stats.Inserted)
	assert.Equal(t, 0, first.Stats.Updated)
	assert.Equal(t, len(dataset), first.Stats.Total)
	assert.Len(t, first.Advocates, len(dataset))

	// Idempotent: a second seed updates every row in place, no duplicates.
	second, err := u.SeedAdvocates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Stats.Inserted)
	assert.Equal(t, len(dataset), second.Stats.Updated)
	assert.Len(t, repo.advocates, len(dataset))
}

func TestSeedAdvocatesIsolatesRecordFailures(t *testing.T) {
	t.Parallel()

	dataset := entity.BootstrapAdvocates()
	failing := dataset[2]

	repo := &fakeAdvocateRepository{
		failUpserts: map[string]error{
			failing.FirstName + " " + failing.LastName: errors.New("deadlock detected"),
		},
	}
	u := newTestUsecase(repo)

	result, err := u.SeedAdvocates(context.Background())
	require.NoError(t, err, "a single failing record must not abort the batch")
	assert.Equal(t, len(dataset)-1, result.Stats.Inserted)
	assert.Equal(t, len(dataset)-1, result.Stats.Total)
	assert.Len(t, result.Advocates, len(dataset)-1)
}

func TestSeedAdvocatesInvalidatesCacheOnce(t *testing.T) {
	t.Parallel()

	repo := &fakeAdvocateRepository{}
	u := newTestUsecase(repo)
	ctx := context.Background()

	_, err := u.SearchAdvocates(ctx, &entity.AdvocateFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, repo.searchCalls)

	_, err = u.SeedAdvocates(ctx)
	require.NoError(t, err)

	result, err := u.SearchAdvocates(ctx, &entity.AdvocateFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.searchCalls, "seed must flush the cached empty result")
	assert.Equal(t, int64(len(entity.BootstrapAdvocates())), result.Total)
}
