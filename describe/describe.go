// Package describe calls an external text-generation API to draft short
// product descriptions for the admin panel. The call is strictly
// best-effort: a missing credential, transport failure or malformed
// response all yield the generic fallback text, never an error to the
// end user.
package describe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"dokan/utils"

	"github.com/julienschmidt/httprouter"
)

const Fallback = "A quality product at a great price."

type Generator struct {
	APIURL string
	APIKey string
	HTTP   *http.Client
}

func NewGenerator(apiURL, apiKey string) *Generator {
	return &Generator{
		APIURL: apiURL,
		APIKey: apiKey,
		HTTP:   &http.Client{Timeout: 15 * time.Second},
	}
}

type genRequest struct {
	Contents []genContent `json:"contents"`
}

type genContent struct {
	Parts []genPart `json:"parts"`
}

type genPart struct {
	Text string `json:"text"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// Generate returns a short sales description for the product name, or the
// fallback text when anything goes wrong.
func (g *Generator) Generate(ctx context.Context, productName string) string {
	if g.APIKey == "" || g.APIURL == "" {
		log.Println("describe: generation API key missing")
		return Fallback
	}

	prompt := fmt.Sprintf(
		"Write an appealing, concise sales description for a product named %q. Keep it to 2-3 sentences.",
		productName,
	)
	payload, err := json.Marshal(genRequest{
		Contents: []genContent{{Parts: []genPart{{Text: prompt}}}},
	})
	if err != nil {
		return Fallback
	}

	url := fmt.Sprintf("%s?key=%s", g.APIURL, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		log.Printf("describe: %v", err)
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("describe: generation API returned %s", resp.Status)
		return Fallback
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("describe: %v", err)
		return Fallback
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Fallback
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return Fallback
	}
	return text
}

// DescribeProduct is the HTTP surface: {"name": ...} in, {"description":
// ...} out, always 200.
func (g *Generator) DescribeProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product name is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"description": g.Generate(r.Context(), input.Name),
	})
}
