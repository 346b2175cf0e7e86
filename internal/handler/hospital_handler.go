package handler

import (
	"net/http"
	"strconv"

	"hospital-records-api/internal/service"
	"hospital-records-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type CreateHospitalRequest struct {
	Name                string   `json:"name" binding:"required,max=50"`
	City                string   `json:"city" binding:"required"`
	Image               string   `json:"image" binding:"required"`
	Speciality          []string `json:"speciality" binding:"required,min=1"`
	Rating              *float64 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Description         string   `json:"description"`
	Images              []string `json:"images"`
	NumberOfDoctors     int      `json:"numberOfDoctors" binding:"omitempty,gte=0"`
	NumberOfDepartments int      `json:"numberOfDepartments" binding:"omitempty,gte=0"`
}

type UpdateHospitalRequest struct {
	ID                  string   `json:"id"`
	Name                *string  `json:"name" binding:"omitempty,max=50"`
	City                *string  `json:"city"`
	Image               *string  `json:"image"`
	Speciality          []string `json:"speciality" binding:"omitempty,min=1"`
	Rating              *float64 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Description         *string  `json:"description"`
	Images              []string `json:"images"`
	NumberOfDoctors     *int     `json:"numberOfDoctors" binding:"omitempty,gte=0"`
	NumberOfDepartments *int     `json:"numberOfDepartments" binding:"omitempty,gte=0"`
}

type HospitalDetailsRequest struct {
	ID                  string   `json:"id"`
	Description         *string  `json:"description"`
	Images              []string `json:"images"`
	NumberOfDoctors     *int     `json:"numberOfDoctors" binding:"omitempty,gte=0"`
	NumberOfDepartments *int     `json:"numberOfDepartments" binding:"omitempty,gte=0"`
}

type DeleteHospitalRequest struct {
	ID string `json:"id"`
}

// CreateHospital creates a new hospital
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req CreateHospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	hospital, err := h.hospitalService.Create(service.CreateHospitalInput{
		Name:                req.Name,
		City:                req.City,
		Image:               req.Image,
		Speciality:          req.Speciality,
		Rating:              req.Rating,
		Description:         req.Description,
		Images:              req.Images,
		NumberOfDoctors:     req.NumberOfDoctors,
		NumberOfDepartments: req.NumberOfDepartments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, hospital)
}

// GetHospitals serves both addressing modes of the listing endpoint:
// an id query returns a single hospital, otherwise hospitals are searched
// by city substring with pagination
func (h *HospitalHandler) GetHospitals(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
			return
		}

		hospital, err := h.hospitalService.GetByID(id)
		if err != nil {
			respondError(c, err)
			return
		}

		utils.SuccessResponse(c, hospital)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPageLimit)))

	result, err := h.hospitalService.Search(service.SearchParams{
		City:  c.Query("city"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Hospitals, len(result.Hospitals), utils.Pagination{
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
	})
}

// UpdateHospital overwrites the supplied fields of an existing hospital
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var req UpdateHospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	id, ok := resolveHospitalID(c, req.ID)
	if !ok {
		return
	}

	hospital, err := h.hospitalService.Update(id, service.UpdateHospitalInput{
		Name:                req.Name,
		City:                req.City,
		Image:               req.Image,
		Speciality:          req.Speciality,
		Rating:              req.Rating,
		Description:         req.Description,
		Images:              req.Images,
		NumberOfDoctors:     req.NumberOfDoctors,
		NumberOfDepartments: req.NumberOfDepartments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// AddHospitalDetails applies the partial detail update; only description,
// images, numberOfDoctors and numberOfDepartments are touched
func (h *HospitalHandler) AddHospitalDetails(c *gin.Context) {
	var req HospitalDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	id, ok := resolveHospitalID(c, req.ID)
	if !ok {
		return
	}

	hospital, err := h.hospitalService.UpdateDetails(id, service.HospitalDetailsInput{
		Description:         req.Description,
		Images:              req.Images,
		NumberOfDoctors:     req.NumberOfDoctors,
		NumberOfDepartments: req.NumberOfDepartments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// DeleteHospital permanently removes a hospital
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	// Body is optional here, the id may arrive as a query parameter
	var req DeleteHospitalRequest
	_ = c.ShouldBindJSON(&req)

	id, ok := resolveHospitalID(c, req.ID)
	if !ok {
		return
	}

	if err := h.hospitalService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

// resolveHospitalID normalizes the two identifier sources; the query
// parameter wins over the body field
func resolveHospitalID(c *gin.Context, bodyID string) (string, bool) {
	id := c.Query("id")
	if id == "" {
		id = bodyID
	}
	if id == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please provide a hospital ID")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return "", false
	}
	return id, true
}
