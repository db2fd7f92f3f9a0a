package producer

import "strings"

// Field length caps applied before validation.
const (
	maxBrandName = 120
	maxProduct   = 280
	maxOffer     = 280
	maxWebsite   = 200
	maxMarket    = 280

	// TopK bounds for every output bucket.
	MinTopK     = 1
	MaxTopK     = 5
	DefaultTopK = 5
)

// CampaignInput is the immutable request payload the pipeline works from.
// It is echoed verbatim in the final response.
type CampaignInput struct {
	BrandName string `json:"brand_name"`
	Product   string `json:"product"`
	Offer     string `json:"offer"`
	Website   string `json:"website"`
	Market    string `json:"market"`
	TopK      int    `json:"top_k"`
}

func clampStr(v string, max int) string {
	s := strings.TrimSpace(v)
	if r := []rune(s); len(r) > max {
		return string(r[:max])
	}
	return s
}

func clampTopK(v int) int {
	if v == 0 {
		return DefaultTopK
	}
	if v < MinTopK {
		return MinTopK
	}
	if v > MaxTopK {
		return MaxTopK
	}
	return v
}

// NewCampaignInput trims and caps every field, clamps top_k and reports
// which required fields are empty after trimming. The input is usable
// only when the missing list is empty.
func NewCampaignInput(brandName, product, offer, website, market string, topK int) (CampaignInput, []string) {
	in := CampaignInput{
		BrandName: clampStr(brandName, maxBrandName),
		Product:   clampStr(product, maxProduct),
		Offer:     clampStr(offer, maxOffer),
		Website:   clampStr(website, maxWebsite),
		Market:    clampStr(market, maxMarket),
		TopK:      clampTopK(topK),
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"brand_name", in.BrandName},
		{"product", in.Product},
		{"offer", in.Offer},
		{"website", in.Website},
		{"market", in.Market},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return in, missing
}
