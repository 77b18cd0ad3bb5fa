package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID    uint `gorm:"primaryKey"`
	Bucket string
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"zero values", PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{"keeps explicit values", PageRequest{Page: 3, PageSize: 5}, PageRequest{Page: 3, PageSize: 5}},
		{"clamps oversized pages", PageRequest{Page: 1, PageSize: 1000}, PageRequest{Page: 1, PageSize: MaxPageSize}},
		{"negative page", PageRequest{Page: -2, PageSize: 10}, PageRequest{Page: 1, PageSize: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Defaults()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 2, 10, 21)
	assert.Equal(t, []int{}, resp.Data)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestMapPage(t *testing.T) {
	page := NewPageResponse([]int{1, 2}, 1, 2, 5)
	mapped := MapPage(page, func(v *int) string { return fmt.Sprint(*v * 10) })

	assert.Equal(t, []string{"10", "20"}, mapped.Data)
	assert.Equal(t, int64(5), mapped.TotalItems)
	assert.Equal(t, 3, mapped.TotalPages)
}

func TestFindPage(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:pagination?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&row{Bucket: "a"}).Error)
	}
	require.NoError(t, db.Create(&row{Bucket: "b"}).Error)

	page, err := FindPage[row](db.Model(&row{}).Where("bucket = ?", "a"), PageRequest{Page: 2, PageSize: 2}, "id DESC")
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, uint(3), page.Data[0].ID)
	assert.Equal(t, uint(2), page.Data[1].ID)
}
