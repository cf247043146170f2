package weather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"weatherlookup.app/pkg/validation"
)

func TestLookupRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request LookupRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "ValidCity",
			request: LookupRequest{Location: "London"},
		},
		{
			name:    "ValidCoordinates",
			request: LookupRequest{Location: "51.52,-0.11"},
		},
		{
			name:    "EmptyLocation",
			request: LookupRequest{Location: ""},
			wantErr: true,
			errMsg:  "location cannot be empty",
		},
		{
			name:    "WhitespaceOnlyLocation",
			request: LookupRequest{Location: "   "},
			wantErr: true,
			errMsg:  "location cannot be empty",
		},
		{
			name:    "TooLong",
			request: LookupRequest{Location: strings.Repeat("x", validation.MaxLocationLength+1)},
			wantErr: true,
			errMsg:  "cannot exceed",
		},
		{
			name:    "ControlCharacters",
			request: LookupRequest{Location: "Lon\tdon\x07"},
			wantErr: true,
			errMsg:  "invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLookupRequest_Normalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"London", "London"},
		{"  London  ", "London"},
		{"New   York", "New York"},
		{"\tKyiv\n", "Kyiv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			request := LookupRequest{Location: tt.input}
			request.Normalize()
			assert.Equal(t, tt.expected, request.Location)
		})
	}
}
