package detect

// Popularity and advise keyword sets. Detection is deliberately plain keyword
// matching; there is no NLP/ML layer.
var (
	popularKeywords = []string{
		"phổ biến", "pho bien", "bán chạy", "ban chay", "nổi bật", "noi bat",
		"hot", "trending", "popular", "best seller", "best selling",
		"bestseller", "được ưa chuộng", "duoc ua chuong",
	}
	adviseKeywords = []string{
		"tư vấn", "tu van", "gợi ý quà", "goi y qua", "gợi ý giúp",
		"tìm quà cho", "tim qua cho", "chọn quà", "chon qua", "mua quà cho",
		"mua qua cho", "advise", "suggest a gift", "recommend a gift",
		"find a gift", "gift for",
	}
)

// IsPopularityRequest reports whether the utterance asks for popular or
// best-selling items.
func IsPopularityRequest(text string) bool {
	return containsAnyWord(Normalize(text), popularKeywords) != ""
}

// IsAdviseRequest reports whether the utterance explicitly asks for a gift
// recommendation.
func IsAdviseRequest(text string) bool {
	return containsAnyWord(Normalize(text), adviseKeywords) != ""
}
