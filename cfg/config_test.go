package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)

	c, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", c.Redis.Addr())
	assert.Equal(t, int64(1), c.NodeID)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, 10, c.CacheTTLMinutes)
	assert.Equal(t, 24*time.Hour, c.GeocodeCacheTTL)
	assert.True(t, c.Amadeus.HotelOffersV3)
	assert.True(t, c.Amadeus.PricePrediction)
	assert.Equal(t, 1.0, c.Nominatim.RatePerSec)
	assert.Equal(t, "tripscout", c.Observability.ServiceName)
	assert.Empty(t, c.Amadeus.ClientID)
	assert.Nil(t, c.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("AMADEUS_CLIENT_ID", "id")
	t.Setenv("AMADEUS_CLIENT_SECRET", "secret")
	t.Setenv("AMADEUS_HOTEL_OFFERS_V3", "false")
	t.Setenv("NOMINATIM_RATE_PER_SEC", "0.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, "secret", c.Amadeus.ClientSecret)
	assert.False(t, c.Amadeus.HotelOffersV3)
	assert.Equal(t, 0.5, c.Nominatim.RatePerSec)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
}

func TestFromEnv_ReportsEveryProblem(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("CACHE_TTL_MINUTES", "ten")

	_, err := fromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing env: APP_ENV")
	assert.Contains(t, err.Error(), "missing env: APP_PORT")
	assert.Contains(t, err.Error(), "conversion failed env: CACHE_TTL_MINUTES")
}
