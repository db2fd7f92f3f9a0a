package producer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCampaignInputTrimsAndAccepts(t *testing.T) {
	in, missing := NewCampaignInput("  Acme  ", "Widget", "10% off", "acme.com", "SMBs", 3)
	assert.Empty(t, missing)
	assert.Equal(t, "Acme", in.BrandName)
	assert.Equal(t, 3, in.TopK)
}

func TestNewCampaignInputReportsMissingFields(t *testing.T) {
	_, missing := NewCampaignInput("Acme", "Widget", "10% off", "acme.com", "   ", 0)
	assert.Equal(t, []string{"market"}, missing)

	_, missing = NewCampaignInput("", "", "x", "y", "z", 0)
	assert.Equal(t, []string{"brand_name", "product"}, missing)
}

func TestNewCampaignInputCapsFieldLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	in, missing := NewCampaignInput(long, long, long, long, long, 5)
	assert.Empty(t, missing)
	assert.Len(t, in.BrandName, 120)
	assert.Len(t, in.Product, 280)
	assert.Len(t, in.Offer, 280)
	assert.Len(t, in.Website, 200)
	assert.Len(t, in.Market, 280)
}

func TestNewCampaignInputClampsTopK(t *testing.T) {
	cases := map[int]int{
		0:   DefaultTopK, // unset
		-3:  1,
		1:   1,
		5:   5,
		99:  5,
		3:   3,
		100: 5,
	}
	for given, want := range cases {
		in, _ := NewCampaignInput("a", "b", "c", "d", "e", given)
		assert.Equal(t, want, in.TopK, "top_k=%d", given)
	}
}
