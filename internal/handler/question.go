package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/my-diary/backend/internal/service"
)

type QuestionHandler struct {
	svc *service.QuestionService
}

func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// Random godoc
// @Summary Get a random question the caller has not answered yet
// @Tags question
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.QuestionResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/questions/random [get]
func (h *QuestionHandler) Random(c *gin.Context) {
	user := GetAuthUser(c)
	question, err := h.svc.RandomUnanswered(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question.ToResponse())
}
