package model

type Question struct {
	ID      int64
	Content string
}

type QuestionResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

func (q *Question) ToResponse() QuestionResponse {
	return QuestionResponse{ID: q.ID, Content: q.Content}
}
