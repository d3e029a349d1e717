package interpreter

import "regexp"

// The dictionaries below are process-wide static configuration: compiled once
// at package init and shared read-only across concurrent requests. They are
// ordered slices, not maps, so substitution and first-match precedence are
// deterministic.

// substitution is a whole-word phrase replacement.
type substitution struct {
	re *regexp.Regexp
	to string
}

func newSubstitutions(pairs [][2]string) []substitution {
	subs := make([]substitution, len(pairs))
	for i, p := range pairs {
		subs[i] = substitution{
			re: regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
			to: p[1],
		}
	}
	return subs
}

// spellingCorrections maps common misspellings to their correction.
var spellingCorrections = newSubstitutions([][2]string{
	{"ifone", "iphone"},
	{"iphon", "iphone"},
	{"ipone", "iphone"},
	{"aiphone", "iphone"},
	{"i phone", "iphone"},
	{"samung", "samsung"},
	{"samsang", "samsung"},
	{"samsun", "samsung"},
	{"sumsung", "samsung"},
	{"one plus", "oneplus"},
	{"onplus", "oneplus"},
	{"realmy", "realme"},
	{"relme", "realme"},
	{"redme", "redmi"},
	{"redemy", "redmi"},
	{"xaomi", "xiaomi"},
	{"xiomi", "xiaomi"},
	{"mi", "xiaomi"},
	{"opoo", "oppo"},
	{"loptop", "laptop"},
	{"laptap", "laptop"},
	{"hedphone", "headphone"},
	{"headfone", "headphone"},
	{"earpod", "earpods"},
	{"airpod", "airpods"},
	{"charjer", "charger"},
	{"chargr", "charger"},
})

// colloquialTerms translates Hinglish to English. An empty replacement drops
// filler words. Only the most common English equivalent is used.
var colloquialTerms = newSubstitutions([][2]string{
	{"sasta", "cheap"},
	{"sastha", "cheap"},
	{"mehnga", "expensive"},
	{"mahenga", "expensive"},
	{"accha", "good"},
	{"acha", "good"},
	{"bekaar", "bad"},
	{"bekar", "bad"},
	{"naya", "latest"},
	{"naye", "latest"},
	{"purana", "old"},
	{"bada", "big"},
	{"badi", "big"},
	{"chota", "small"},
	{"choti", "small"},
	{"wala", ""},
	{"wali", ""},
	{"ka", ""},
	{"ki", ""},
	{"ke", ""},
	{"mobile", "phone"},
})

// colorTerms normalizes Hindi color names and canonicalizes "grey".
var colorTerms = newSubstitutions([][2]string{
	{"lal", "red"},
	{"neela", "blue"},
	{"nila", "blue"},
	{"hara", "green"},
	{"peela", "yellow"},
	{"kaala", "black"},
	{"kala", "black"},
	{"safed", "white"},
	{"gulabi", "pink"},
	{"grey", "gray"},
})

// knownBrands is the vocabulary for fuzzy spelling correction.
var knownBrands = []string{
	"apple", "samsung", "oneplus", "xiaomi", "redmi", "realme", "oppo", "vivo",
	"motorola", "nokia", "sony", "lg", "google", "asus", "lenovo", "hp", "dell",
	"acer", "msi", "boat", "jbl", "bose", "sennheiser", "skullcandy",
	"anker", "belkin", "spigen", "ringke", "noise", "fire-boltt", "amazfit",
}

// protectedWords must never be fuzzy-corrected into a brand: common
// adjectives, colors, and size words that sit within edit distance 1 of a
// brand name (e.g. "nose" vs "bose", "case" vs "asus" neighborhoods).
var protectedWords = map[string]struct{}{
	"good": {}, "best": {}, "cheap": {}, "new": {}, "old": {}, "big": {},
	"small": {}, "large": {}, "high": {}, "more": {}, "most": {}, "top": {},
	"case": {}, "cover": {}, "cable": {}, "glass": {}, "band": {}, "watch": {},
	"phone": {}, "nose": {}, "rose": {}, "dose": {}, "hose": {}, "pose": {},
	"bell": {}, "cell": {}, "well": {}, "sell": {}, "coat": {}, "goat": {},
	"note": {}, "mini": {}, "plus": {}, "ultra": {}, "inch": {}, "inches": {},
	"black": {}, "white": {}, "blue": {}, "red": {}, "green": {}, "gold": {},
	"silver": {}, "purple": {}, "pink": {}, "gray": {}, "grey": {},
	"yellow": {}, "orange": {},
}

// Price intent keyword lists.
var (
	cheapKeywords     = []string{"cheap", "budget", "affordable", "low price", "sasta", "value"}
	expensiveKeywords = []string{"expensive", "premium", "flagship", "high end", "best", "top"}
	latestKeywords    = []string{"latest", "new", "newest", "recent", "2024", "2025", "launched"}
)

// pricePatternKind tags how a matched number becomes a range.
type pricePatternKind int

const (
	priceMax pricePatternKind = iota
	// priceAround yields the tuned +-20% band around the captured value.
	priceAround
)

type pricePattern struct {
	re   *regexp.Regexp
	kind pricePatternKind
}

// pricePatterns are tried in order; the first match wins. Each captures the
// number and an optional thousands suffix.
var pricePatterns = []pricePattern{
	{regexp.MustCompile(`under\s*(\d+)(k?)\b`), priceMax},
	{regexp.MustCompile(`below\s*(\d+)(k?)\b`), priceMax},
	{regexp.MustCompile(`around\s*(\d+)(k?)\b`), priceAround},
	{regexp.MustCompile(`(\d+)(k?)\s*rupees?\b`), priceAround},
	{regexp.MustCompile(`(\d+)(k?)\s*rs\.?(?:\s|$)`), priceAround},
	{regexp.MustCompile(`budget\s*(\d+)(k?)\b`), priceMax},
	{regexp.MustCompile(`(\d+)(k?)\s*budget\b`), priceMax},
	{regexp.MustCompile(`(\d+)(k?)\s*(?:ke\s*)?andar\b`), priceMax},
	{regexp.MustCompile(`(\d+)(k?)\s*tak\b`), priceMax},
}

// aroundBandFraction is the tuned variance for "around N" prices.
const aroundBandFraction = 0.2

// colorVocabulary is scanned in order; first substring match wins.
var colorVocabulary = []string{
	"black", "white", "blue", "red", "green", "gold", "silver",
	"purple", "pink", "gray", "grey", "yellow", "orange",
}

// highStoragePhrases signal the "wants more storage" tier.
var highStoragePhrases = []string{
	"more storage", "high storage", "maximum storage", "max storage",
	"bigger storage", "large storage", "highest storage", "most storage",
	"zyada storage", "bada storage",
}

var storageSizeRe = regexp.MustCompile(`(\d+)\s*(gb|tb)`)

// brandAliases maps product-line nicknames to canonical brands, in
// precedence order.
var brandAliases = []struct {
	alias string
	brand string
}{
	{"iphone", "Apple"},
	{"ipad", "Apple"},
	{"macbook", "Apple"},
	{"airpods", "Apple"},
	{"apple watch", "Apple"},
	{"apple", "Apple"},
	{"galaxy", "Samsung"},
	{"samsung", "Samsung"},
	{"oneplus", "OnePlus"},
	{"xiaomi", "Xiaomi"},
	{"redmi", "Redmi"},
	{"poco", "Poco"},
	{"realme", "Realme"},
	{"oppo", "Oppo"},
	{"vivo", "Vivo"},
	{"motorola", "Motorola"},
	{"moto", "Motorola"},
	{"nokia", "Nokia"},
	{"google", "Google"},
	{"pixel", "Google"},
	{"sony", "Sony"},
	{"jbl", "JBL"},
	{"boat", "Boat"},
	{"noise", "Noise"},
	{"bose", "Bose"},
	{"sennheiser", "Sennheiser"},
	{"hp", "HP"},
	{"dell", "Dell"},
	{"lenovo", "Lenovo"},
	{"asus", "Asus"},
	{"acer", "Acer"},
	{"msi", "MSI"},
}

// accessoryKeywords are checked before the other category keyword lists
// because accessory terms are more specific.
var accessoryKeywords = []string{
	"cover", "case", "charger", "cable", "adapter",
	"screen guard", "tempered glass", "power bank", "protector",
}

// categoryKeywords is scanned in fixed order after accessories.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"phone", []string{"phone", "mobile", "smartphone", "iphone", "samsung", "oneplus", "xiaomi", "redmi", "realme", "oppo", "vivo"}},
	{"laptop", []string{"laptop", "notebook", "macbook", "chromebook"}},
	{"headphone", []string{"headphone", "earphone", "earbud", "airpod", "earbuds", "headset", "tws"}},
	{"tablet", []string{"tablet", "ipad", "tab"}},
	{"smartwatch", []string{"watch", "smartwatch", "band", "fitness band"}},
}

// stopWords are dropped from the residual token set.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"for": {}, "of": {}, "to": {}, "in": {}, "on": {}, "with": {}, "and": {},
	"or": {}, "i": {}, "want": {}, "need": {}, "looking": {}, "search": {},
	"find": {}, "show": {}, "me": {}, "please": {},
}

// intentWords feed ranking signals, not text matching; keeping them in the
// token set would double-count price and quality adjectives.
var intentWords = map[string]struct{}{
	"cheap": {}, "budget": {}, "affordable": {}, "expensive": {}, "premium": {},
	"latest": {}, "new": {}, "best": {}, "good": {}, "top": {}, "under": {},
	"below": {}, "around": {}, "andar": {}, "tak": {}, "rupees": {}, "rs": {},
	"price": {}, "color": {}, "colour": {}, "more": {}, "storage": {},
}

var bareNumberRe = regexp.MustCompile(`^\d+k?$`)
