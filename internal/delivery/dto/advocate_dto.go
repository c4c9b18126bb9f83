package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Request DTOs

type CreateAdvocateRequest struct {
	FirstName         string      `json:"firstName" validate:"required"`
	LastName          string      `json:"lastName" validate:"required"`
	City              string      `json:"city" validate:"required"`
	Degree            string      `json:"degree" validate:"required"`
	Specialties       []string    `json:"specialties" validate:"required,min=1,dive,required"`
	YearsOfExperience int         `json:"yearsOfExperience" validate:"gte=0"`
	PhoneNumber       PhoneNumber `json:"phoneNumber" validate:"required"`
}

// PhoneNumber accepts both a JSON number and a numeric string, since
// clients submit either form.
type PhoneNumber int64

func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("phoneNumber must be numeric")
	}

	*p = PhoneNumber(n)
	return nil
}

// Response DTOs

type AdvocateResponse struct {
	ID                int       `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	City              string    `json:"city"`
	Degree            string    `json:"degree"`
	Specialties       []string  `json:"specialties"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	PhoneNumber       int64     `json:"phoneNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}

type AdvocateListResponse struct {
	Advocates []AdvocateResponse `json:"advocates"`
}

type SearchAdvocatesResponse struct {
	Advocates []AdvocateResponse `json:"advocates"`
	Total     int64              `json:"total"`
	Limit     *int               `json:"limit"`
	Offset    *int               `json:"offset"`
}

type CreateAdvocateResponse struct {
	Message  string           `json:"message"`
	Advocate AdvocateResponse `json:"advocate"`
}

type SeedStats struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

type SeedAdvocatesResponse struct {
	Message   string             `json:"message"`
	Advocates []AdvocateResponse `json:"advocates"`
	Stats     SeedStats          `json:"stats"`
}
