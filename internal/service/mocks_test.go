package service

import (
	"errors"

	"hospital-records-api/internal/models"
	"hospital-records-api/internal/repository"
)

// Compile-time check to ensure the mocks implement the repository contracts
var _ repository.HospitalRepository = (*MockHospitalRepository)(nil)
var _ repository.UserRepository = (*MockUserRepository)(nil)

// MockHospitalRepository is a mock implementation of HospitalRepository
type MockHospitalRepository struct {
	CreateFunc   func(hospital *models.Hospital) error
	FindByIDFunc func(id string) (*models.Hospital, error)
	SearchFunc   func(city string, offset, limit int) ([]models.Hospital, error)
	CountFunc    func(city string) (int64, error)
	SaveFunc     func(hospital *models.Hospital) error
	DeleteFunc   func(id string) error
}

func (m *MockHospitalRepository) Create(hospital *models.Hospital) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(hospital)
	}
	return nil
}

func (m *MockHospitalRepository) FindByID(id string) (*models.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockHospitalRepository) Search(city string, offset, limit int) ([]models.Hospital, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(city, offset, limit)
	}
	return nil, nil
}

func (m *MockHospitalRepository) Count(city string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(city)
	}
	return 0, nil
}

func (m *MockHospitalRepository) Save(hospital *models.Hospital) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(hospital)
	}
	return nil
}

func (m *MockHospitalRepository) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(user *models.User) error
	FindByEmailFunc func(email string) (*models.User, error)
	FindByIDFunc    func(id string) (*models.User, error)
}

func (m *MockUserRepository) Create(user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}
