package weather

import (
	"bytes"
	"encoding/json"
	"strings"

	"weatherlookup.app/internal/models"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// currentPayload decodes every current-conditions field except the nested
// condition object, which the outer Condition field shadows and keeps raw.
type currentPayload struct {
	models.CurrentConditions
	Condition json.RawMessage `json:"condition"`
}

// Normalize maps a provider response onto a complete WeatherSnapshot. The
// provider nests the condition one level below the other current fields; it is
// decoded on its own and attached to the current-conditions record.
func Normalize(response *ports.ProviderResponse) (*models.WeatherSnapshot, error) {
	if response == nil {
		return nil, errors.NewNormalizationError("provider response is empty", nil)
	}
	if isMissing(response.Location) {
		return nil, errors.NewNormalizationError("provider response has no location object", nil)
	}
	if isMissing(response.Current) {
		return nil, errors.NewNormalizationError("provider response has no current object", nil)
	}

	var location models.Location
	if err := json.Unmarshal(response.Location, &location); err != nil {
		return nil, errors.NewNormalizationError("decode location object", err)
	}
	if strings.TrimSpace(location.Name) == "" {
		return nil, errors.NewNormalizationError("provider location has no name", nil)
	}

	var current currentPayload
	if err := json.Unmarshal(response.Current, &current); err != nil {
		return nil, errors.NewNormalizationError("decode current object", err)
	}
	if isMissing(current.Condition) {
		return nil, errors.NewNormalizationError("provider current object has no condition", nil)
	}

	var condition models.Condition
	if err := json.Unmarshal(current.Condition, &condition); err != nil {
		return nil, errors.NewNormalizationError("decode current.condition object", err)
	}

	conditions := current.CurrentConditions
	conditions.Condition = &condition

	return &models.WeatherSnapshot{
		Location: &location,
		Current:  &conditions,
	}, nil
}

func isMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
