package usecase

import (
	"context"
	"errors"

	"advocate-directory/internal/cache"
	"advocate-directory/internal/converter"
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrAdvocateExists = errors.New("an advocate with this first and last name already exists")
)

type AdvocateUsecase interface {
	ListAdvocates(ctx context.Context) (*dto.AdvocateListResponse, error)
	SearchAdvocates(ctx context.Context, filter *entity.AdvocateFilter) (*dto.SearchAdvocatesResponse, error)
	CreateAdvocate(ctx context.Context, req *dto.CreateAdvocateRequest) (*dto.AdvocateResponse, error)
	SeedAdvocates(ctx context.Context) (*dto.SeedAdvocatesResponse, error)
}

type advocateUsecase struct {
	log          *logrus.Logger
	advocateRepo repository.AdvocateRepository
	resultCache  cache.ResultCache
}

func NewAdvocateUsecase(
	log *logrus.Logger,
	advocateRepo repository.AdvocateRepository,
	resultCache cache.ResultCache,
) AdvocateUsecase {
	return &advocateUsecase{
		log:          log,
		advocateRepo: advocateRepo,
		resultCache:  resultCache,
	}
}

func (u *advocateUsecase) ListAdvocates(ctx context.Context) (*dto.AdvocateListResponse, error) {
	advocates, err := u.advocateRepo.FindAll(ctx)
	if err != nil {
		u.log.Errorf("Failed to fetch advocates: %+v", err)
		return nil, err
	}

	return &dto.AdvocateListResponse{
		Advocates: converter.AdvocatesToResponses(advocates),
	}, nil
}

// SearchAdvocates serves a filtered, paginated page of advocates,
// cache-aside: a hit skips the database entirely; a miss runs the
// filtered fetch and count queries and populates the cache.
func (u *advocateUsecase) SearchAdvocates(ctx context.Context, filter *entity.AdvocateFilter) (*dto.SearchAdvocatesResponse, error) {
	result, ok := u.resultCache.Get(ctx, filter)
	if !ok {
		advocates, total, err := u.advocateRepo.Search(ctx, filter)
		if err != nil {
			u.log.Errorf("Failed to search advocates: %+v", err)
			return nil, err
		}

		result = &entity.SearchResult{Advocates: advocates, Total: total}
		u.resultCache.Set(ctx, filter, result)
	}

	return &dto.SearchAdvocatesResponse{
		Advocates: converter.AdvocatesToResponses(result.Advocates),
		Total:     result.Total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

func (u *advocateUsecase) CreateAdvocate(ctx context.Context, req *dto.CreateAdvocateRequest) (*dto.AdvocateResponse, error) {
	advocate := &entity.Advocate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		City:              req.City,
		Degree:            req.Degree,
		Specialties:       req.Specialties,
		YearsOfExperience: req.YearsOfExperience,
		PhoneNumber:       int64(req.PhoneNumber),
	}

	if err := u.advocateRepo.Create(ctx, advocate); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAdvocateExists
		}
		u.log.Errorf("Failed to create advocate: %+v", err)
		return nil, err
	}

	// The cache cannot tell which cached queries the new row affects,
	// so every write flushes the whole namespace.
	u.resultCache.InvalidateAll(ctx)

	return converter.AdvocateToResponse(advocate), nil
}

// SeedAdvocates upserts the bootstrap dataset one record at a time. A
// failing record is logged and skipped, never fatal to the batch; stats
// reflect only records that were processed successfully. The cache is
// invalidated once, after the batch completes.
func (u *advocateUsecase) SeedAdvocates(ctx context.Context) (*dto.SeedAdvocatesResponse, error) {
	var (
		seeded   []entity.Advocate
		inserted int
		updated  int
	)

	for _, record := range entity.BootstrapAdvocates() {
		advocate, wasInserted, err := u.advocateRepo.Upsert(ctx, &record)
		if err != nil {
			u.log.Warnf("Failed to seed advocate %s %s, skipping: %v", record.FirstName, record.LastName, err)
			continue
		}

		seeded = append(seeded, *advocate)
		if wasInserted {
			inserted++
		} else {
			updated++
		}
	}

	u.resultCache.InvalidateAll(ctx)

	return &dto.SeedAdvocatesResponse{
		Message:   "Advocates seeded successfully",
		Advocates: converter.AdvocatesToResponses(seeded),
		Stats: dto.SeedStats{
			Inserted: inserted,
			Updated:  updated,
			Total:    inserted + updated,
		},
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}
