package detect

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/utils"
)

// DetectService is the image-detection boundary: a black-box classifier that
// returns named items with confidence scores and, when readable from the
// packaging, an estimated expiry date. Internals (model choice, OCR) are the
// collaborator's concern.
type (
	DetectService interface {
		DetectFoodItems(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.DetectedItem, error)
	}

	detectService struct {
		confidenceThreshold float64
	}
)

func NewDetectService(confidenceThreshold float64) DetectService {
	if confidenceThreshold <= 0 {
		confidenceThreshold = 0.5
	}
	return &detectService{confidenceThreshold: confidenceThreshold}
}

func (s *detectService) DetectFoodItems(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.DetectedItem, error) {
	file, err := imageFile.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	base64Image := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL not configured")
	}

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
		switch strings.ToLower(filepath.Ext(imageFile.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".gif":
			mimeType = "image/gif"
		case ".webp":
			mimeType = "image/webp"
		}
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": "Identify every food item visible in this refrigerator image. " +
							"Respond ONLY with a valid JSON array where each object has exactly these fields: " +
							"'name' (string), 'confidenceScore' (number between 0 and 1), and " +
							"'expiryDate' (string in YYYY-MM-DD format if a date is readable on the packaging, otherwise null). " +
							"Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrDetectionFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, domain.ErrDetectionFailed
	}
	responseText = responseText[startIdx : endIdx+1]

	var rawItems []struct {
		Name            string  `json:"name"`
		ConfidenceScore float64 `json:"confidenceScore"`
		ExpiryDate      *string `json:"expiryDate"`
	}

	if err := json.Unmarshal([]byte(responseText), &rawItems); err != nil {
		return nil, fmt.Errorf("failed to parse detection response: %w", err)
	}

	detected := make([]domain.DetectedItem, 0, len(rawItems))
	for _, raw := range rawItems {
		if raw.Name == "" || raw.ConfidenceScore < s.confidenceThreshold {
			continue
		}

		item := domain.DetectedItem{
			Name:       raw.Name,
			Category:   CategorizeFood(raw.Name),
			Confidence: raw.ConfidenceScore,
		}

		if raw.ExpiryDate != nil {
			if expiry, err := time.Parse("2006-01-02", *raw.ExpiryDate); err == nil {
				item.EstimatedExpiry = &expiry
			}
		}

		detected = append(detected, item)
	}

	if len(detected) == 0 {
		return nil, domain.ErrNoItemsDetected
	}

	return detected, nil
}
