package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minimartlabs/minimart/internal/validate"
)

func TestAddCartItemValidation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantErr      bool
		wantQuantity int32
	}{
		{
			name:         "given productId and quantity should be valid",
			body:         `{"product_id": "f1b1e9a0-8f4e-4d1c-9a38-4be51f3a3a7e", "quantity": 3}`,
			wantErr:      false,
			wantQuantity: 3,
		},
		{
			name:         "given omitted quantity should default to one",
			body:         `{"product_id": "f1b1e9a0-8f4e-4d1c-9a38-4be51f3a3a7e"}`,
			wantErr:      false,
			wantQuantity: 1,
		},
		{
			name:    "given missing productId should be invalid",
			body:    `{"quantity": 3}`,
			wantErr: true,
		},
		{
			name:    "given zero quantity should be invalid",
			body:    `{"product_id": "f1b1e9a0-8f4e-4d1c-9a38-4be51f3a3a7e", "quantity": 0}`,
			wantErr: true,
		},
		{
			name:    "given negative quantity should be invalid",
			body:    `{"product_id": "f1b1e9a0-8f4e-4d1c-9a38-4be51f3a3a7e", "quantity": -2}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := AddCartItem{}
			err := json.Unmarshal([]byte(tt.body), &reqBody)
			assert.NoError(t, err)

			err = validate.New().Struct(reqBody)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.wantQuantity, reqBody.ItemQuantity())
		})
	}
}
