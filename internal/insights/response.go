package insights

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
)

const (
	fallbackAnswer   = "I'm having trouble analysing your data right now. Please try again."
	limitedDataNote  = " Note: I have limited data to work with. Keep tracking to get better insights!"
	minConfidence    = 1
	maxConfidence    = 5
	sparseConfidence = 2
)

var errEmptyAnswer = errors.New("model answer is empty")

type InsightResponse struct {
	Answer     string     `json:"answer"`
	Suspects   []string   `json:"suspects"`
	Evidence   []string   `json:"evidence"`
	Confidence int        `json:"confidence"`
	DataUsed   []Category `json:"dataUsed"`
}

type modelOutput struct {
	Answer     string   `json:"answer"`
	Suspects   []string `json:"suspects"`
	Evidence   []string `json:"evidence"`
	Confidence *float64 `json:"confidence"`
}

// ParseModelResponse turns raw model text into a response for pack. It never
// fails: undecodable output becomes a low-confidence fallback. DataUsed always
// comes from the pack.
func ParseModelResponse(raw string, pack EvidencePack) InsightResponse {
	response, err := decodeModelOutput(raw)
	if err != nil {
		response = fallbackResponse(raw)
	}

	response.DataUsed = append([]Category{}, pack.DataFetched...)

	if !pack.HasInformativeData() && !mentionsMissingData(response.Answer) {
		response.Answer += limitedDataNote
		response.Confidence = min(response.Confidence, sparseConfidence)
	}
	return response
}

func decodeModelOutput(raw string) (InsightResponse, error) {
	var output modelOutput
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &output); err != nil {
		return InsightResponse{}, err
	}
	if strings.TrimSpace(output.Answer) == "" {
		return InsightResponse{}, errEmptyAnswer
	}

	return InsightResponse{
		Answer:     output.Answer,
		Suspects:   nonNil(output.Suspects),
		Evidence:   nonNil(output.Evidence),
		Confidence: clampConfidence(output.Confidence),
	}, nil
}

func fallbackResponse(raw string) InsightResponse {
	answer := raw
	if strings.TrimSpace(answer) == "" {
		answer = fallbackAnswer
	}
	return InsightResponse{
		Answer:     answer,
		Suspects:   []string{},
		Evidence:   []string{},
		Confidence: minConfidence,
	}
}

// stripCodeFence removes a leading ```json or ``` marker and a trailing ```.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func clampConfidence(confidence *float64) int {
	if confidence == nil || math.IsNaN(*confidence) {
		return minConfidence
	}
	rounded := math.Round(*confidence)
	return int(math.Max(minConfidence, math.Min(maxConfidence, rounded)))
}

func mentionsMissingData(answer string) bool {
	lower := strings.ToLower(answer)
	return strings.Contains(lower, "no data") || strings.Contains(lower, "track")
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
