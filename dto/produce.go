package dto

import (
	"time"

	"viralpack/producer"
)

// ProduceRequestDTO is the inbound body of the generation endpoint.
// Every text field is required to be non-empty after server-side trimming.
type ProduceRequestDTO struct {
	BrandName string `json:"brand_name" example:"Acme"`
	Product   string `json:"product" example:"Widget"`
	Offer     string `json:"offer" example:"10% off"`
	Website   string `json:"website" example:"acme.com"`
	Market    string `json:"market" example:"SMBs"`
	TopK      int    `json:"top_k" example:"5"`
}

// ProduceResponseDTO is the success envelope of the generation endpoint.
type ProduceResponseDTO struct {
	OK            bool                   `json:"ok"`
	PackID        string                 `json:"pack_id"`
	SchemaVersion string                 `json:"schema_version"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Input         producer.CampaignInput `json:"input"`
	Output        producer.Buckets       `json:"output"`
}
