package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_MisspelledBrandWithStorageAndPrice(t *testing.T) {
	intent := New().Interpret("ifone 128gb under 60000")

	assert.Contains(t, intent.ProcessedQuery(), "iphone")
	assert.Equal(t, "Apple", intent.Brand())
	assert.Equal(t, "128GB", intent.StorageTier())
	assert.Equal(t, "phone", intent.Category())

	require.NotNil(t, intent.PriceRange())
	max, ok := intent.PriceRange().Max()
	require.True(t, ok)
	assert.Equal(t, 60000.0, max)
	_, hasMin := intent.PriceRange().Min()
	assert.False(t, hasMin)

	assert.Contains(t, intent.Tokens(), "iphone")
	assert.NotContains(t, intent.Tokens(), "under")
	assert.NotContains(t, intent.Tokens(), "60000")
}

func TestInterpret_HinglishTranslation(t *testing.T) {
	intent := New().Interpret("sasta accha phone")

	assert.True(t, intent.IsCheap())
	assert.Contains(t, intent.ProcessedQuery(), "cheap")
	assert.Contains(t, intent.ProcessedQuery(), "good")
	assert.Equal(t, "phone", intent.Category())
	// Price and quality adjectives feed intent, not text matching.
	assert.Equal(t, []string{"phone"}, intent.Tokens())
}

func TestInterpret_Idempotent(t *testing.T) {
	it := New()
	first := it.Interpret("Sasta Samsung mobile under 30k")
	second := it.Interpret("Sasta Samsung mobile under 30k")
	assert.Equal(t, first, second)
}

func TestInterpret_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		intent := New().Interpret(q)

		assert.Empty(t, intent.ProcessedQuery(), "query %q", q)
		assert.Empty(t, intent.Tokens(), "query %q", q)
		assert.False(t, intent.IsCheap())
		assert.False(t, intent.IsExpensive())
		assert.False(t, intent.IsLatest())
		assert.Nil(t, intent.PriceRange())
		assert.Empty(t, intent.Brand())
		assert.Empty(t, intent.Category())
	}
}

func TestInterpret_ThousandsSuffix(t *testing.T) {
	intent := New().Interpret("phone under 50k")

	require.NotNil(t, intent.PriceRange())
	max, ok := intent.PriceRange().Max()
	require.True(t, ok)
	assert.Equal(t, 50000.0, max)
}

func TestInterpret_ThousandsSuffixNotAppliedToLargeNumbers(t *testing.T) {
	intent := New().Interpret("laptop under 1400k")

	require.NotNil(t, intent.PriceRange())
	max, _ := intent.PriceRange().Max()
	assert.Equal(t, 1400.0, max)
}

func TestInterpret_AroundPriceBand(t *testing.T) {
	intent := New().Interpret("phone around 30k")

	require.NotNil(t, intent.PriceRange())
	min, hasMin := intent.PriceRange().Min()
	max, hasMax := intent.PriceRange().Max()
	require.True(t, hasMin)
	require.True(t, hasMax)
	assert.InDelta(t, 24000, min, 0.01)
	assert.InDelta(t, 36000, max, 0.01)

	// The trigger word is consumed into the price range, never text-matched.
	assert.Equal(t, []string{"phone"}, intent.Tokens())
}

func TestInterpret_HinglishPriceBoundTokensConsumed(t *testing.T) {
	for _, q := range []string{"phone 30k tak", "phone 30k ke andar"} {
		intent := New().Interpret(q)

		require.NotNil(t, intent.PriceRange(), "query %q", q)
		max, ok := intent.PriceRange().Max()
		require.True(t, ok, "query %q", q)
		assert.Equal(t, 30000.0, max, "query %q", q)
		assert.Equal(t, []string{"phone"}, intent.Tokens(), "query %q", q)
	}
}

func TestInterpret_HindiColorNormalized(t *testing.T) {
	intent := New().Interpret("lal phone")
	assert.Equal(t, "red", intent.Color())
}

func TestInterpret_GreyCanonicalizedToGray(t *testing.T) {
	intent := New().Interpret("grey laptop")
	assert.Equal(t, "gray", intent.Color())
}

func TestInterpret_FuzzyBrandCorrection(t *testing.T) {
	intent := New().Interpret("samsng phone")
	assert.Equal(t, "Samsung", intent.Brand())
}

func TestInterpret_ProtectedWordsNotCorrected(t *testing.T) {
	// "nose" is one edit away from "bose" but must survive.
	intent := New().Interpret("nose cancelling headphone")
	assert.Empty(t, intent.Brand())
	assert.Contains(t, intent.ProcessedQuery(), "nose")
}

func TestInterpret_ShortWordsNotFuzzyCorrected(t *testing.T) {
	intent := New().Interpret("bot speaker")
	assert.Contains(t, intent.ProcessedQuery(), "bot")
}

func TestInterpret_AccessoryBeatsPhoneCategory(t *testing.T) {
	intent := New().Interpret("iphone cover")
	assert.Equal(t, "accessory", intent.Category())
	assert.Equal(t, "Apple", intent.Brand())
}

func TestInterpret_HighStorageTier(t *testing.T) {
	intent := New().Interpret("phone with more storage")
	assert.Equal(t, "high", intent.StorageTier())
}

func TestInterpret_ExpensiveAndLatestFlags(t *testing.T) {
	intent := New().Interpret("latest premium flagship phone")
	assert.True(t, intent.IsExpensive())
	assert.True(t, intent.IsLatest())
	assert.False(t, intent.IsCheap())
}

func TestInterpret_MobileTranslatesToPhone(t *testing.T) {
	intent := New().Interpret("naya mobile")
	assert.True(t, intent.IsLatest())
	assert.Equal(t, "phone", intent.Category())
	assert.Contains(t, intent.ProcessedQuery(), "phone")
}
