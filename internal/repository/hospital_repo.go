package repository

import (
	"strings"

	"hospital-records-api/internal/models"

	"gorm.io/gorm"
)

// HospitalRepository is the datastore contract for hospital records
type HospitalRepository interface {
	Create(hospital *models.Hospital) error
	FindByID(id string) (*models.Hospital, error)
	Search(city string, offset, limit int) ([]models.Hospital, error)
	Count(city string) (int64, error)
	Save(hospital *models.Hospital) error
	Delete(id string) error
}

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

// Create inserts a new hospital record
func (r *hospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// FindByID retrieves a hospital by ID
func (r *hospitalRepository) FindByID(id string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// Search retrieves hospitals matching the city filter, highest rated first.
// An empty city matches all hospitals.
func (r *hospitalRepository) Search(city string, offset, limit int) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.cityQuery(city).
		Order("rating DESC").
		Offset(offset).
		Limit(limit).
		Find(&hospitals).Error
	return hospitals, err
}

// Count returns the number of hospitals matching the city filter
func (r *hospitalRepository) Count(city string) (int64, error) {
	var total int64
	err := r.cityQuery(city).Count(&total).Error
	return total, err
}

// Save persists all fields of an existing hospital
func (r *hospitalRepository) Save(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

// Delete permanently removes a hospital by ID
func (r *hospitalRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Hospital{}).Error
}

// cityQuery builds a case-insensitive substring filter on city
func (r *hospitalRepository) cityQuery(city string) *gorm.DB {
	q := r.db.Model(&models.Hospital{})
	if city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	return q
}
