package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays_Count(t *testing.T) {
	assert.Equal(t, 3, Days("3").Count())
	assert.Equal(t, 2, Days("abc").Count())
}

func TestItineraryRequest_SendsDaysAsTyped(t *testing.T) {
	b, err := json.Marshal(ItineraryRequest{Destination: "Tokyo", Days: "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Tokyo","days":"abc"}`, string(b))
}

func TestAuthResult_Rejected(t *testing.T) {
	assert.True(t, AuthResult{Error: "User exists"}.Rejected())
	assert.False(t, AuthResult{Token: "t"}.Rejected())
}
