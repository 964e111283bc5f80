package services

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEpisode(t *testing.T) {
	assert.NoError(t, validateEpisode("公園の茂みで見かけた"))
	assert.True(t, apperr.IsValidation(validateEpisode("")))
	assert.True(t, apperr.IsValidation(validateEpisode("   ")), "whitespace-only is empty")
}

func TestValidatePosition(t *testing.T) {
	assert.NoError(t, validatePosition(35.6762, 139.6503))
	assert.NoError(t, validatePosition(-90, 180))

	assert.True(t, apperr.IsValidation(validatePosition(0, 0)),
		"the (0,0) null island sentinel means no position was picked")
	assert.True(t, apperr.IsValidation(validatePosition(91, 135)))
	assert.True(t, apperr.IsValidation(validatePosition(35, 181)))
	assert.True(t, apperr.IsValidation(validatePosition(-91, -181)))
}

func TestParseDiscoveryDate(t *testing.T) {
	got, err := parseDiscoveryDate("2026-08-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseDiscoveryDate("")
	require.NoError(t, err)
	assert.Nil(t, got, "absent date is not an error")

	_, err = parseDiscoveryDate("15/08/2026")
	assert.True(t, apperr.IsValidation(err))
}

func TestValidateScore(t *testing.T) {
	for score := 1; score <= 5; score++ {
		assert.NoError(t, validateScore(score))
	}
	assert.True(t, apperr.IsValidation(validateScore(0)))
	assert.True(t, apperr.IsValidation(validateScore(6)))
	assert.True(t, apperr.IsValidation(validateScore(-1)))
}

func TestValidateCommentContent(t *testing.T) {
	got, err := validateCommentContent("  かわいい！  ")
	require.NoError(t, err)
	assert.Equal(t, "かわいい！", got, "surrounding whitespace is trimmed before storing")

	_, err = validateCommentContent("")
	assert.True(t, apperr.IsValidation(err))
	_, err = validateCommentContent("   \n\t ")
	assert.True(t, apperr.IsValidation(err))
}

func TestValidateCommentContentLength(t *testing.T) {
	atLimit := strings.Repeat("た", 500)
	got, err := validateCommentContent(atLimit)
	require.NoError(t, err, "length counts runes, not bytes")
	assert.Equal(t, atLimit, got)

	_, err = validateCommentContent(strings.Repeat("た", 501))
	assert.True(t, apperr.IsValidation(err))
}
