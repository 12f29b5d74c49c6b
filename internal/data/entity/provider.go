package entity

// MovieProvider links a streaming movie to one of the known providers.
// Rows only exist for movies with is_theatrical_release = false.
type MovieProvider struct {
	ID            int64 `db:"id"`
	MovieID       int64 `db:"movie_id"`
	TheProviderID int   `db:"the_provider_id"`
}

const (
	ProviderNetflix    = 1
	ProviderDisneyPlus = 2
	ProviderWavve      = 3
	ProviderNaver      = 4
	ProviderGooglePlay = 5
)

// ProviderNameUnknown is returned for provider ids outside the known table.
const ProviderNameUnknown = "알 수 없음"

var providerNames = map[int]string{
	ProviderNetflix:    "넷플릭스",
	ProviderDisneyPlus: "디즈니플러스",
	ProviderWavve:      "웨이브",
	ProviderNaver:      "네이버",
	ProviderGooglePlay: "구글 플레이",
}

var providerSlugs = map[string]int{
	"netflix":    ProviderNetflix,
	"disney":     ProviderDisneyPlus,
	"wavve":      ProviderWavve,
	"naver":      ProviderNaver,
	"googleplay": ProviderGooglePlay,
}

// ProviderName maps a provider id to its display name.
func ProviderName(providerID int) string {
	if name, ok := providerNames[providerID]; ok {
		return name
	}
	return ProviderNameUnknown
}

// ProviderIDFromSlug maps a query-string provider slug to its numeric id.
// Unrecognized slugs return 0, which imposes no filter.
func ProviderIDFromSlug(slug string) int {
	return providerSlugs[slug]
}
