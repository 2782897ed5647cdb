package request

type SendMessageRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}
