package database

import (
	"sync"

	"gorm.io/gorm"
)

// Capabilities records which OPTIONAL tables exist in the backing store.
// Deployments migrated from older schema versions may lack them; each
// optional feature checks its own flag and degrades to a safe default.
// The required scheduling tables (appointments, operating windows,
// blackout periods) are never probed: the core assumes they exist.
type Capabilities struct {
	AdminAccounts bool
}

var (
	capsOnce sync.Once
	caps     Capabilities
)

// Detect probes optional tables once per process and caches the result.
func Detect(db *gorm.DB) Capabilities {
	capsOnce.Do(func() {
		caps = Capabilities{
			AdminAccounts: db.Migrator().HasTable("admin_users"),
		}
	})
	return caps
}
