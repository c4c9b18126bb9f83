package repository

import (
	"context"
	"strings"
	"time"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type advocateRepository struct {
	db *gorm.DB
}

func NewAdvocateRepository(db *gorm.DB) domainRepo.AdvocateRepository {
	return &advocateRepository{db: db}
}

// predicate is one optional WHERE clause produced from the filter.
type predicate struct {
	expr string
	args []interface{}
}

// buildPredicates folds the filter into an ordered list of clauses.
// Absent filter fields contribute no clause; the conjunction of the
// returned list is the full search predicate. Shared by the row-fetch
// and count queries so the two can never disagree.
func buildPredicates(filter *entity.AdvocateFilter) []predicate {
	if filter == nil {
		return nil
	}

	var predicates []predicate

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		predicates = append(predicates, predicate{
			expr: "(first_name ILIKE ? OR last_name ILIKE ? OR city ILIKE ? OR degree ILIKE ? OR LOWER(specialties::text) LIKE ?)",
			args: []interface{}{pattern, pattern, pattern, pattern, pattern},
		})
	}
	if filter.City != "" {
		predicates = append(predicates, predicate{expr: "city ILIKE ?", args: []interface{}{"%" + filter.City + "%"}})
	}
	if filter.Degree != "" {
		predicates = append(predicates, predicate{expr: "degree ILIKE ?", args: []interface{}{"%" + filter.Degree + "%"}})
	}
	if filter.MinExperience != nil {
		predicates = append(predicates, predicate{expr: "years_of_experience >= ?", args: []interface{}{*filter.MinExperience}})
	}
	if filter.MaxExperience != nil {
		predicates = append(predicates, predicate{expr: "years_of_experience <= ?", args: []interface{}{*filter.MaxExperience}})
	}
	if filter.Specialty != "" {
		predicates = append(predicates, predicate{expr: "specialties @> ?", args: []interface{}{pq.StringArray{filter.Specialty}}})
	}

	return predicates
}

// applyPredicates attaches every clause to the query as an AND conjunction.
func applyPredicates(query *gorm.DB, predicates []predicate) *gorm.DB {
	for _, p := range predicates {
		query = query.Where(p.expr, p.args...)
	}
	return query
}

func (r *advocateRepository) FindAll(ctx context.Context) ([]entity.Advocate, error) {
	var advocates []entity.Advocate
	err := r.db.WithContext(ctx).Order("id ASC").Find(&advocates).Error
	if err != nil {
		return nil, err
	}
	return advocates, nil
}

func (r *advocateRepository) Search(ctx context.Context, filter *entity.AdvocateFilter) ([]entity.Advocate, int64, error) {
	predicates := buildPredicates(filter)

	var total int64
	countQuery := applyPredicates(r.db.WithContext(ctx).Model(&entity.Advocate{}), predicates)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Explicit id-ascending order keeps pagination stable across pages.
	fetchQuery := applyPredicates(r.db.WithContext(ctx).Model(&entity.Advocate{}), predicates).Order("id ASC")
	if filter != nil && filter.Limit != nil {
		fetchQuery = fetchQuery.Limit(*filter.Limit)
	}
	if filter != nil && filter.Offset != nil {
		fetchQuery = fetchQuery.Offset(*filter.Offset)
	}

	var advocates []entity.Advocate
	if err := fetchQuery.Find(&advocates).Error; err != nil {
		return nil, 0, err
	}

	return advocates, total, nil
}

func (r *advocateRepository) Create(ctx context.Context, advocate *entity.Advocate) error {
	return r.db.WithContext(ctx).Create(advocate).Error
}

// upsertRow carries the advocate columns plus the insert/update
// classification from the xmax system-column probe.
type upsertRow struct {
	ID                int
	FirstName         string
	LastName          string
	City              string
	Degree            string
	Specialties       pq.StringArray
	YearsOfExperience int
	PhoneNumber       int64
	CreatedAt         time.Time
	Inserted          bool
}

const upsertAdvocateSQL = `
INSERT INTO advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (first_name, last_name) DO UPDATE SET
	city = EXCLUDED.city,
	degree = EXCLUDED.degree,
	specialties = EXCLUDED.specialties,
	years_of_experience = EXCLUDED.years_of_experience,
	phone_number = EXCLUDED.phone_number
RETURNING id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number, created_at, (xmax = 0) AS inserted`

func (r *advocateRepository) Upsert(ctx context.Context, advocate *entity.Advocate) (*entity.Advocate, bool, error) {
	var row upsertRow
	err := r.db.WithContext(ctx).Raw(upsertAdvocateSQL,
		advocate.FirstName,
		advocate.LastName,
		advocate.City,
		advocate.Degree,
		advocate.Specialties,
		advocate.YearsOfExperience,
		advocate.PhoneNumber,
	).Scan(&row).Error
	if err != nil {
		return nil, false, err
	}

	result := &entity.Advocate{
		ID:                row.ID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		City:              row.City,
		Degree:            row.Degree,
		Specialties:       row.Specialties,
		YearsOfExperience: row.YearsOfExperience,
		PhoneNumber:       row.PhoneNumber,
		CreatedAt:         row.CreatedAt,
	}
	return result, row.Inserted, nil
}
