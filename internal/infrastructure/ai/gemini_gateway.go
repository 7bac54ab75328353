package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"reparo_pro/internal/domain/catalog"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiEmptyResponse = errors.New("gemini returned no candidates")

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiGateway asks Gemini to read a free-text damage description and answer
// with catalog part ids plus, per part, the suggested service names,
// constrained by a JSON response schema. SUGGESTION_MOCK switches to a
// deterministic keyword matcher for local runs and tests.

type GeminiGateway struct {
	client   *genai.Client
	model    string
	mockMode bool
}

var _ interfaces.ISuggestionProvider = (*GeminiGateway)(nil)

func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if isSuggestionMockEnabled() {
		log.Printf("[suggestion][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}
	if apiKey == "" {
		log.Printf("[suggestion][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[suggestion][gateway] client init failed err=%v", err)
		return nil, err
	}
	log.Printf("[suggestion][gateway] Gemini client initialized")
	return &GeminiGateway{
		client: client,
		model:  getenvDefault("GEMINI_MODEL", defaultGeminiModel),
	}, nil
}

// suggestionPayload is the JSON shape the response schema forces the model
// into: suggestedServices is keyed by damaged part id.
type suggestionPayload struct {
	DamagedParts      []string            `json:"damagedParts"`
	SuggestedServices map[string][]string `json:"suggestedServices"`
}

func (g *GeminiGateway) Suggest(ctx context.Context, description string) (entities.RepairSuggestion, error) {
	if g != nil && g.mockMode {
		return mockSuggestion(description), nil
	}
	if g == nil || g.client == nil {
		return entities.RepairSuggestion{}, ErrMissingGeminiAPIKey
	}

	prompt := fmt.Sprintf(
		`Analisando a seguinte descrição de danos em um veículo, identifique as peças danificadas e sugira os serviços de reparo necessários para cada peça. Descrição: %q`,
		description,
	)

	log.Printf("[suggestion][gateway] request start model=%s description_len=%d", g.model, len(description))
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		log.Printf("[suggestion][gateway] request failed err=%v", err)
		return entities.RepairSuggestion{}, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return entities.RepairSuggestion{}, ErrGeminiEmptyResponse
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Printf("[suggestion][gateway] payload unmarshal failed err=%v", err)
		return entities.RepairSuggestion{}, err
	}
	log.Printf("[suggestion][gateway] request success parts=%d", len(payload.DamagedParts))
	return entities.RepairSuggestion{
		DamagedParts:      payload.DamagedParts,
		SuggestedServices: payload.SuggestedServices,
	}, nil
}

// responseSchema constrains part ids to the catalog so the model cannot
// invent panels the damage diagram does not have, and keys the suggested
// services by part id so each part only carries its own services.
func responseSchema() *genai.Schema {
	ids := make([]string, 0, len(catalog.CarParts))
	servicesPerPart := make(map[string]*genai.Schema, len(catalog.CarParts))
	for _, p := range catalog.CarParts {
		ids = append(ids, p.ID)
		servicesPerPart[p.ID] = &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"damagedParts": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString, Enum: ids},
			},
			"suggestedServices": {
				Type:       genai.TypeObject,
				Properties: servicesPerPart,
			},
		},
	}
}

// mockKeywords maps lowercase description keywords to catalog part ids.
var mockKeywords = []struct {
	keyword string
	partID  string
}{
	{"para-choque dianteiro", "front-bumper"},
	{"para-choque traseiro", "rear-bumper"},
	{"capô", "hood"},
	{"capo", "hood"},
	{"teto", "roof"},
	{"porta-malas", "trunk"},
	{"porta dianteira esquerda", "front-left-door"},
	{"porta dianteira direita", "front-right-door"},
	{"porta traseira esquerda", "rear-left-door"},
	{"porta traseira direita", "rear-right-door"},
	{"para-lama dianteiro esquerdo", "front-left-fender"},
	{"para-lama dianteiro direito", "front-right-fender"},
	{"para-lama traseiro esquerdo", "rear-left-fender"},
	{"para-lama traseiro direito", "rear-right-fender"},
	{"saia lateral esquerda", "left-rocker-panel"},
	{"saia lateral direita", "right-rocker-panel"},
	{"para-choque", "front-bumper"},
	{"porta", "front-left-door"},
	{"para-lama", "front-left-fender"},
}

// standardMockServices is what the mock recommends for every matched part.
var standardMockServices = []string{"Desamassar (Pequeno)", "Lixamento", "Pintura (Base)", "Polimento"}

// mockSuggestion is the deterministic stand-in: keyword scan for parts, with
// the standard dent+paint service set attached to each matched part.
func mockSuggestion(description string) entities.RepairSuggestion {
	lowered := strings.ToLower(description)
	s := entities.RepairSuggestion{DamagedParts: []string{}, SuggestedServices: map[string][]string{}}
	for _, kw := range mockKeywords {
		if !strings.Contains(lowered, kw.keyword) {
			continue
		}
		if _, seen := s.SuggestedServices[kw.partID]; seen {
			continue
		}
		s.DamagedParts = append(s.DamagedParts, kw.partID)
		s.SuggestedServices[kw.partID] = append([]string(nil), standardMockServices...)
		// Consume the matched text so the generic fallbacks at the end of
		// the list cannot re-match a more specific mention.
		lowered = strings.ReplaceAll(lowered, kw.keyword, "")
	}
	return s
}

func isSuggestionMockEnabled() bool {
	for _, key := range []string{"SUGGESTION_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
