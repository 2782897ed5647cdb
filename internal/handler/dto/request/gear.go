package request

type CreateGearRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required,oneof=bikes water camping power gear"`
	DailyPriceCents int64  `json:"daily_price_cents" binding:"required,gt=0"`
	Location        string `json:"location" binding:"required"`
}
