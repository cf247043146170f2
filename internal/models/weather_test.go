package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherSnapshot_IsEmpty(t *testing.T) {
	var nilSnapshot *WeatherSnapshot

	tests := []struct {
		name     string
		snapshot *WeatherSnapshot
		empty    bool
		complete bool
	}{
		{"nil", nilSnapshot, true, false},
		{"zero", &WeatherSnapshot{}, true, false},
		{"location_only", &WeatherSnapshot{Location: &Location{Name: "London"}}, false, false},
		{"current_without_condition", &WeatherSnapshot{
			Location: &Location{Name: "London"},
			Current:  &CurrentConditions{TempC: 18},
		}, false, false},
		{"complete", &WeatherSnapshot{
			Location: &Location{Name: "London"},
			Current:  &CurrentConditions{TempC: 18, Condition: &Condition{Text: "Cloudy", Code: 1006}},
		}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.snapshot.IsEmpty())
			assert.Equal(t, tt.complete, tt.snapshot.IsComplete())
		})
	}
}
