package ranking

// prefectureOrder is the canonical north-to-south JIS prefecture sequence
// used by the region sort mode.
var prefectureOrder = []string{
	"北海道",
	"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県",
	"岐阜県", "静岡県", "愛知県", "三重県",
	"滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県",
	"鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県",
	"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県",
	"沖縄県",
}

const (
	// rankUnrecognized places labels outside the table (foreign countries,
	// free-form strings) after every recognized prefecture.
	rankUnrecognized = 98
	// rankAbsent pushes entries with no region label at all to the very end.
	rankAbsent = 99
)

var prefectureRanks = func() map[string]int {
	m := make(map[string]int, len(prefectureOrder))
	for i, name := range prefectureOrder {
		m[name] = i + 1
	}
	return m
}()

// RegionRank maps a region label to its sort position. Recognized
// prefectures rank 1..47, unrecognized labels share rank 98, and a missing
// label ranks 99.
func RegionRank(label string) int {
	if label == "" {
		return rankAbsent
	}
	if rank, ok := prefectureRanks[label]; ok {
		return rank
	}
	return rankUnrecognized
}
