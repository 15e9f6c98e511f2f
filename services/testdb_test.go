package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"case_track_app_go/models"
)

// setupTestDB opens a uniquely named shared in-memory database so tests stay
// isolated from each other
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	assert.NoError(t, err)

	err = conn.AutoMigrate(&models.Case{})
	assert.NoError(t, err)

	return conn
}
