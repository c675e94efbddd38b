package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/id"
)

type mockCatalog struct {
	entity.BaseCatalog
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Skip  string `db:"-"`
	NoTag string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "created_at", "updated_at", "name", "email",
	}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	cat := mockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  "Acme Inc",
		Email: "billing@acme.test",
		Skip:  "ignored",
		NoTag: "ignored",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "Acme Inc", m["name"])
	assert.Equal(t, "billing@acme.test", m["email"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 7)
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &mockCatalog{Name: "ptr"}
	m := StructToMap(cat)
	assert.Equal(t, "ptr", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}
