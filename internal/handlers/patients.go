package handlers

import (
	"net/http"
	"strconv"

	"patient-api/internal/auth"
	"patient-api/internal/models"
	"patient-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ListPatientsQuery holds the pagination parameters of GET /patients/.
type ListPatientsQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=0"`
}

type PatientHandler struct {
	store store.PatientStore
	log   zerolog.Logger
}

func NewPatientHandler(s store.PatientStore, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{store: s, log: log}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		rejectRequest(c, err)
		return
	}
	p, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info().
		Int("patient_id", p.ID).
		Str("by", auth.UsernameFromContext(c)).
		Msg("patient created")
	c.JSON(http.StatusCreated, p)
}

func (h *PatientHandler) List(c *gin.Context) {
	var q ListPatientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		rejectRequest(c, err)
		return
	}
	patients, err := h.store.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		rejectRequest(c, err)
		return
	}
	p, err := h.store.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info().
		Int("patient_id", p.ID).
		Str("by", auth.UsernameFromContext(c)).
		Msg("patient updated")
	c.JSON(http.StatusOK, p)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		detail(c, http.StatusUnprocessableEntity, "patient id must be an integer")
		return 0, false
	}
	return id, true
}
