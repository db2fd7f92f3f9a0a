package producer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlannerPrompt builds the stage-1 prompt. The model must answer with one
// raw JSON object in the PlanResult shape, nothing else.
func PlannerPrompt(in CampaignInput) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are the producer/strategist for short-form viral marketing.
Given the inputs, output ONLY a JSON object with:
{
  "trend_queries": [up to 5 strings],
  "angle_notes": "short string"
}
Do not wrap the JSON in markdown and do not add commentary.
Keep queries specific to the market and what would trend on TikTok/IG Reels right now.
Inputs:
brand_name: %s
product: %s
offer: %s
website: %s
market: %s`,
		in.BrandName, in.Product, in.Offer, in.Website, in.Market))
}

// TrendScanPrompt builds the stage-2 prompt. The recovered (or defaulted)
// trend queries are enumerated; an empty plan still produces a usable prompt.
func TrendScanPrompt(in CampaignInput, trendQueries []string) string {
	queries := "- (no queries provided)"
	if len(trendQueries) > 0 {
		lines := make([]string, len(trendQueries))
		for i, q := range trendQueries {
			lines[i] = fmt.Sprintf("%d. %s", i+1, q)
		}
		queries = strings.Join(lines, "\n")
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are doing trend reconnaissance for short-form video.
Return concise bullets only.

Market: %s
Product: %s
Offer: %s
Brand: %s

Trend queries:
%s

Deliver:
- 8-12 trend bullet insights
- 6-10 phrases/hooks styles currently performing
- 10-20 relevant hashtags (not generic)`,
		in.Market, in.Product, in.Offer, in.BrandName, queries))
}

// PackPrompt builds the stage-3 prompt. It embeds the full input as
// formatted JSON, the stage-1 angle notes and the stage-2 text literally;
// nothing upstream is re-derived or summarized here.
func PackPrompt(in CampaignInput, angleNotes, trendText string) string {
	inputJSON, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		inputJSON = []byte("{}")
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are ViralPack, generating a tight output in strict JSON.
Use the trend insights below to write the final pack.
Return ONLY JSON with this schema:

{
  "schema_version": "%s",
  "input": { "brand_name": "...", "product": "...", "offer": "...", "website": "...", "market": "...", "top_k": %d },
  "output": {
    "hooks": [%d strings],
    "on_screen_overlays": [%d strings],
    "captions": [%d strings],
    "hashtags": [%d strings]
  }
}

Hard rules:
- Exactly top_k items per array.
- Every item is a plain string, no numbering or bullets.
- Hooks are 1 line, punchy.
- Overlays are short, readable on screen.
- Captions are 1-2 lines max.
- Hashtags: include the # symbol, not generic junk.
- A single JSON object only, no markdown and no commentary.

Inputs:
%s

Angle notes from planner:
%s

Trend insights:
%s`,
		SchemaVersion, in.TopK, in.TopK, in.TopK, in.TopK, in.TopK,
		string(inputJSON), angleNotes, trendText))
}
