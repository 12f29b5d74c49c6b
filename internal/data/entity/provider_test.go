package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderName(t *testing.T) {
	assert.Equal(t, "넷플릭스", ProviderName(ProviderNetflix))
	assert.Equal(t, "디즈니플러스", ProviderName(ProviderDisneyPlus))
	assert.Equal(t, "웨이브", ProviderName(ProviderWavve))
	assert.Equal(t, "네이버", ProviderName(ProviderNaver))
	assert.Equal(t, "구글 플레이", ProviderName(ProviderGooglePlay))
	assert.Equal(t, "알 수 없음", ProviderName(0))
	assert.Equal(t, "알 수 없음", ProviderName(99))
}

func TestProviderIDFromSlug(t *testing.T) {
	assert.Equal(t, ProviderNetflix, ProviderIDFromSlug("netflix"))
	assert.Equal(t, ProviderDisneyPlus, ProviderIDFromSlug("disney"))
	assert.Equal(t, ProviderWavve, ProviderIDFromSlug("wavve"))
	assert.Equal(t, ProviderNaver, ProviderIDFromSlug("naver"))
	assert.Equal(t, ProviderGooglePlay, ProviderIDFromSlug("googleplay"))
	assert.Equal(t, 0, ProviderIDFromSlug(""))
	assert.Equal(t, 0, ProviderIDFromSlug("hulu"))
}
