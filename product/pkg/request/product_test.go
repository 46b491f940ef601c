package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/minimartlabs/minimart/internal/validate"
)

func TestProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "given name and price should be valid",
			body:    `{"name": "Apple", "price": "1.50"}`,
			wantErr: false,
		},
		{
			name:    "given zero price should be valid",
			body:    `{"name": "Freebie", "price": "0"}`,
			wantErr: false,
		},
		{
			name:    "given missing name should be invalid",
			body:    `{"price": "1.50"}`,
			wantErr: true,
		},
		{
			name:    "given missing price should be invalid",
			body:    `{"name": "Apple"}`,
			wantErr: true,
		},
		{
			name:    "given negative price should be invalid",
			body:    `{"name": "Apple", "price": "-1.50"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := Product{}
			err := json.Unmarshal([]byte(tt.body), &reqBody)
			assert.NoError(t, err)

			err = validate.New().Struct(reqBody)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductDecodesNumericPrice(t *testing.T) {
	reqBody := Product{}
	err := json.Unmarshal([]byte(`{"name": "Apple", "price": 1.5}`), &reqBody)

	assert.NoError(t, err)
	assert.True(t, reqBody.Price.Equal(decimal.RequireFromString("1.5")))
}
