package api_test

import (
	"testing"

	"flowerdelivery/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/deliveries",
		"/api/deliveries/summary/today",
		"/api/deliveries/report",
		"/api/deliveries/{id}",
		"/api/deliveries/{id}/status",
		"/api/deliveries/{id}/map-qr",
		"/api/contacts",
		"/api/contacts/{id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Contains(t, doc.Components.Schemas, "Delivery")
}
