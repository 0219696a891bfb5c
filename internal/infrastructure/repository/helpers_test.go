package repository

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/logger"
)

var testNow = time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC)

// setupTestDB opens a private in-memory sqlite database with foreign keys
// enforced. A single connection keeps every statement on the same memory
// database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func nopLogger() logger.Interface {
	return logger.NewNopLogger()
}

func seedAgent(t *testing.T, gdb *gorm.DB, name string) uint {
	t.Helper()
	m := &models.AgentModel{Name: name, Email: name + "@travelease.test", Status: "online"}
	require.NoError(t, gdb.Create(m).Error)
	return m.ID
}

func seedCustomer(t *testing.T, gdb *gorm.DB, name, email, phone string) uint {
	t.Helper()
	m := &models.CustomerModel{Name: name, Email: email, Phone: phone, MembershipLevel: "gold"}
	require.NoError(t, gdb.Create(m).Error)
	return m.ID
}

// seedDirectory inserts n customers and n agents into an empty database, so
// ids 1..n exist in both tables.
func seedDirectory(t *testing.T, gdb *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		seedCustomer(t, gdb, fmt.Sprintf("customer %d", i), fmt.Sprintf("c%d@example.com", i), strconv.Itoa(i))
		seedAgent(t, gdb, fmt.Sprintf("agent%d", i))
	}
}

func ms(t time.Time) int64 {
	return biztime.ToMillis(t)
}
