package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrimmedString(t *testing.T) {
	data := map[string]interface{}{"name": "  Asha Rao  "}
	value, err := getTrimmedString(data, "name")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", value)
	assert.Equal(t, "Asha Rao", data["name"], "field is trimmed in place")

	_, err = getTrimmedString(map[string]interface{}{}, "name")
	assert.Error(t, err)

	_, err = getTrimmedString(map[string]interface{}{"name": "   "}, "name")
	assert.Error(t, err)

	_, err = getTrimmedString(map[string]interface{}{"name": 42}, "name")
	assert.Error(t, err)
}

func TestTrimIfExists(t *testing.T) {
	data := map[string]interface{}{"notes": " rest "}
	require.NoError(t, trimIfExists(data, "notes"))
	assert.Equal(t, "rest", data["notes"])

	assert.NoError(t, trimIfExists(map[string]interface{}{}, "notes"))
	assert.Error(t, trimIfExists(map[string]interface{}{"notes": ""}, "notes"))
	assert.Error(t, trimIfExists(map[string]interface{}{"notes": 42}, "notes"))
}

func TestFloatField(t *testing.T) {
	value, err := floatField(map[string]interface{}{"fee": 25.5}, "fee", 0)
	require.NoError(t, err)
	assert.Equal(t, 25.5, value)

	value, err = floatField(map[string]interface{}{"fee": 30}, "fee", 0)
	require.NoError(t, err)
	assert.Equal(t, float64(30), value)

	value, err = floatField(map[string]interface{}{}, "fee", 10)
	require.NoError(t, err)
	assert.Equal(t, float64(10), value, "absent field falls back")

	_, err = floatField(map[string]interface{}{"fee": "thirty"}, "fee", 10)
	assert.Error(t, err, "present but non-numeric is rejected")

	_, err = floatField(map[string]interface{}{"fee": "50"}, "fee", 10)
	assert.Error(t, err, "numeric strings are not coerced")
}
