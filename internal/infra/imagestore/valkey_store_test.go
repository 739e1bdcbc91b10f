package imagestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageCodecRoundTrip(t *testing.T) {
	payload, err := encodeImages(sampleImages())
	require.NoError(t, err)

	got, err := decodeImages(payload)
	require.NoError(t, err)
	require.Equal(t, sampleImages(), got)
}

func TestImageCodecEmpty(t *testing.T) {
	payload, err := encodeImages(nil)
	require.NoError(t, err)

	got, err := decodeImages(payload)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestImageCodecRejectsGarbage(t *testing.T) {
	_, err := decodeImages([]byte{0xc1})
	require.Error(t, err)
}

func TestValkeyStoreKeys(t *testing.T) {
	store := NewValkeyStore(nil, "")
	require.Equal(t, "img:q:eiffel tower", store.entryKey("eiffel tower"))
}
