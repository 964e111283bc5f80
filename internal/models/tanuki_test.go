package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The one-rating-per-identity rule lives in the schema, not in service
// code. If the composite unique index disappears, a repeated submit
// silently becomes a second row.
func TestRatingSchemaKeepsCompositeUniqueIndex(t *testing.T) {
	s, err := schema.Parse(&Rating{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var found *schema.Index
	for _, idx := range s.ParseIndexes() {
		if idx.Name == "idx_ratings_tanuki_user" {
			found = idx
			break
		}
	}
	require.NotNil(t, found, "composite rating index is missing from the schema")
	assert.Equal(t, "UNIQUE", found.Class)

	var fields []string
	for _, f := range found.Fields {
		fields = append(fields, f.DBName)
	}
	assert.Equal(t, []string{"tanuki_id", "user_id"}, fields)
}
