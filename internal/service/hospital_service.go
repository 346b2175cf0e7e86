package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"hospital-records-api/internal/models"
	"hospital-records-api/internal/repository"

	"gorm.io/gorm"
)

const (
	// DefaultPageLimit is the page size used when the caller does not supply one
	DefaultPageLimit = 12

	maxNameLength = 50
	minRating     = 1
	maxRating     = 5
)

type HospitalService struct {
	hospitalRepo repository.HospitalRepository
}

func NewHospitalService(hospitalRepo repository.HospitalRepository) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
	}
}

// CreateHospitalInput carries the fields accepted when creating a hospital
type CreateHospitalInput struct {
	Name                string
	City                string
	Image               string
	Speciality          []string
	Rating              *float64
	Description         string
	Images              []string
	NumberOfDoctors     int
	NumberOfDepartments int
}

// UpdateHospitalInput carries the fields accepted on a full update.
// Nil fields are left unchanged; supplied fields overwrite current values.
type UpdateHospitalInput struct {
	Name                *string
	City                *string
	Image               *string
	Speciality          []string
	Rating              *float64
	Description         *string
	Images              []string
	NumberOfDoctors     *int
	NumberOfDepartments *int
}

// HospitalDetailsInput carries the four fields the detail update may touch
type HospitalDetailsInput struct {
	Description         *string
	Images              []string
	NumberOfDoctors     *int
	NumberOfDepartments *int
}

// SearchParams filters and paginates a hospital listing
type SearchParams struct {
	City  string
	Page  int
	Limit int
}

// SearchResult is one page of a hospital listing
type SearchResult struct {
	Hospitals []models.Hospital
	Total     int64
	Page      int
	Pages     int
}

// Create validates the input, applies defaults and persists a new hospital
func (s *HospitalService) Create(in CreateHospitalInput) (*models.Hospital, error) {
	hospital := &models.Hospital{
		Name:                strings.TrimSpace(in.Name),
		City:                strings.TrimSpace(in.City),
		Image:               in.Image,
		Speciality:          in.Speciality,
		Rating:              minRating,
		Description:         in.Description,
		Images:              in.Images,
		NumberOfDoctors:     in.NumberOfDoctors,
		NumberOfDepartments: in.NumberOfDepartments,
	}
	if in.Rating != nil {
		hospital.Rating = *in.Rating
	}
	if hospital.Images == nil {
		hospital.Images = []string{}
	}

	if err := validateHospital(hospital); err != nil {
		return nil, err
	}

	if err := s.hospitalRepo.Create(hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	return hospital, nil
}

// GetByID retrieves a single hospital
func (s *HospitalService) GetByID(id string) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return hospital, nil
}

// Search lists hospitals, optionally filtered by a case-insensitive city
// substring, paginated and sorted by rating descending
func (s *HospitalService) Search(params SearchParams) (*SearchResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	offset := (page - 1) * limit

	total, err := s.hospitalRepo.Count(params.City)
	if err != nil {
		return nil, fmt.Errorf("failed to count hospitals: %w", err)
	}

	hospitals, err := s.hospitalRepo.Search(params.City, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	return &SearchResult{
		Hospitals: hospitals,
		Total:     total,
		Page:      page,
		Pages:     int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Update overwrites the supplied fields of an existing hospital and
// revalidates the merged record before saving
func (s *HospitalService) Update(id string, in UpdateHospitalInput) (*models.Hospital, error) {
	hospital, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		hospital.Name = strings.TrimSpace(*in.Name)
	}
	if in.City != nil {
		hospital.City = strings.TrimSpace(*in.City)
	}
	if in.Image != nil {
		hospital.Image = *in.Image
	}
	if in.Speciality != nil {
		hospital.Speciality = in.Speciality
	}
	if in.Rating != nil {
		hospital.Rating = *in.Rating
	}
	if in.Description != nil {
		hospital.Description = *in.Description
	}
	if in.Images != nil {
		hospital.Images = in.Images
	}
	if in.NumberOfDoctors != nil {
		hospital.NumberOfDoctors = *in.NumberOfDoctors
	}
	if in.NumberOfDepartments != nil {
		hospital.NumberOfDepartments = *in.NumberOfDepartments
	}

	if err := validateHospital(hospital); err != nil {
		return nil, err
	}

	if err := s.hospitalRepo.Save(hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	return hospital, nil
}

// UpdateDetails applies the partial detail update. Only description, images,
// numberOfDoctors and numberOfDepartments can change; anything else the
// caller sent is ignored.
func (s *HospitalService) UpdateDetails(id string, in HospitalDetailsInput) (*models.Hospital, error) {
	hospital, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		hospital.Description = *in.Description
	}
	if in.Images != nil {
		hospital.Images = in.Images
	}
	if in.NumberOfDoctors != nil {
		hospital.NumberOfDoctors = *in.NumberOfDoctors
	}
	if in.NumberOfDepartments != nil {
		hospital.NumberOfDepartments = *in.NumberOfDepartments
	}

	if err := validateHospital(hospital); err != nil {
		return nil, err
	}

	if err := s.hospitalRepo.Save(hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital details: %w", err)
	}

	return hospital, nil
}

// Delete permanently removes a hospital
func (s *HospitalService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	if err := s.hospitalRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	return nil
}

// validateHospital enforces the entity schema rules on a record about to be
// written
func validateHospital(h *models.Hospital) error {
	var fields []FieldError

	if h.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	} else if len(h.Name) > maxNameLength {
		fields = append(fields, FieldError{Field: "name", Message: "Name cannot be more than 50 characters"})
	}
	if h.City == "" {
		fields = append(fields, FieldError{Field: "city", Message: "City is required"})
	}
	if h.Image == "" {
		fields = append(fields, FieldError{Field: "image", Message: "Image URL is required"})
	}
	if len(h.Speciality) == 0 {
		fields = append(fields, FieldError{Field: "speciality", Message: "Speciality is required"})
	}
	if h.Rating < minRating || h.Rating > maxRating {
		fields = append(fields, FieldError{Field: "rating", Message: "Rating must be between 1 and 5"})
	}
	if h.NumberOfDoctors < 0 {
		fields = append(fields, FieldError{Field: "numberOfDoctors", Message: "Number of doctors cannot be negative"})
	}
	if h.NumberOfDepartments < 0 {
		fields = append(fields, FieldError{Field: "numberOfDepartments", Message: "Number of departments cannot be negative"})
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}
