package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/my-diary/backend/internal/model"
	"github.com/my-diary/backend/internal/service"
)

type DiaryHandler struct {
	svc *service.DiaryService
}

func NewDiaryHandler(svc *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{svc: svc}
}

// Create godoc
// @Summary Create a diary entry
// @Tags diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DiaryCreateRequest true "Title and content"
// @Success 201 {object} model.DiaryResponse
// @Router /api/v1/diaries [post]
func (h *DiaryHandler) Create(c *gin.Context) {
	user := GetAuthUser(c)
	var req model.DiaryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	diary, err := h.svc.Create(c.Request.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, diary.ToResponse())
}

// List godoc
// @Summary List the caller's diary entries
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DiaryResponse
// @Router /api/v1/diaries [get]
func (h *DiaryHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	diaries, err := h.svc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]model.DiaryResponse, 0, len(diaries))
	for i := range diaries {
		out = append(out, diaries[i].ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get one diary entry
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Diary ID"
// @Success 200 {object} model.DiaryResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/diaries/{id} [get]
func (h *DiaryHandler) Get(c *gin.Context) {
	user := GetAuthUser(c)
	diaryID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	diary, err := h.svc.Get(c.Request.Context(), user.ID, diaryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, diary.ToResponse())
}

// Update godoc
// @Summary Update a diary entry (partial)
// @Tags diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Diary ID"
// @Param request body model.DiaryUpdateRequest true "Fields to change"
// @Success 200 {object} model.DiaryResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/diaries/{id} [put]
func (h *DiaryHandler) Update(c *gin.Context) {
	user := GetAuthUser(c)
	diaryID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req model.DiaryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	diary, err := h.svc.Update(c.Request.Context(), user.ID, diaryID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, diary.ToResponse())
}

// Delete godoc
// @Summary Delete a diary entry
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Diary ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/diaries/{id} [delete]
func (h *DiaryHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	diaryID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, diaryID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// parseIDParam reads a positive integer path param, writing the 400
// itself when the param is junk.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, service.ErrInvalidInput
	}
	return id, nil
}
