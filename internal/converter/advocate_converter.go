package converter

import (
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
)

// AdvocateToResponse converts an Advocate entity to AdvocateResponse DTO
func AdvocateToResponse(advocate *entity.Advocate) *dto.AdvocateResponse {
	if advocate == nil {
		return nil
	}

	specialties := make([]string, len(advocate.Specialties))
	copy(specialties, advocate.Specialties)

	return &dto.AdvocateResponse{
		ID:                advocate.ID,
		FirstName:         advocate.FirstName,
		LastName:          advocate.LastName,
		City:              advocate.City,
		Degree:            advocate.Degree,
		Specialties:       specialties,
		YearsOfExperience: advocate.YearsOfExperience,
		PhoneNumber:       advocate.PhoneNumber,
		CreatedAt:         advocate.CreatedAt,
	}
}

// AdvocatesToResponses converts a slice of Advocate entities to slice of AdvocateResponse DTOs
func AdvocatesToResponses(advocates []entity.Advocate) []dto.AdvocateResponse {
	responses := make([]dto.AdvocateResponse, len(advocates))
	for i := range advocates {
		responses[i] = *AdvocateToResponse(&advocates[i])
	}
	return responses
}
