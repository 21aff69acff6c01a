package configs

import (
	"fmt"
	"testing"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

func setupSeedDB(t *testing.T) {
	t.Helper()
	ConnectionDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	SetupDatabase()
}

func TestSeedStaffCreatesAllRoles(t *testing.T) {
	setupSeedDB(t)
	t.Setenv("STAFF_PASSWORD", "s3cret-pass")

	if err := SeedStaff(); err != nil {
		t.Fatalf("SeedStaff: %v", err)
	}

	var count int64
	DB().Model(&entity.User{}).Count(&count)
	if count != 4 {
		t.Fatalf("users = %d, want 4", count)
	}

	var admin entity.User
	if err := DB().Where("email = ?", "admin@pos.local").First(&admin).Error; err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != entity.RoleAdmin {
		t.Errorf("role = %q, want %q", admin.Role, entity.RoleAdmin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("seeded password does not verify: %v", err)
	}

	// รันซ้ำต้องไม่สร้างซ้ำ
	if err := SeedStaff(); err != nil {
		t.Fatalf("SeedStaff rerun: %v", err)
	}
	DB().Model(&entity.User{}).Count(&count)
	if count != 4 {
		t.Errorf("users after rerun = %d, want 4", count)
	}
}

func TestSeedStaffSkipsWithoutPassword(t *testing.T) {
	setupSeedDB(t)
	t.Setenv("STAFF_PASSWORD", "")

	if err := SeedStaff(); err != nil {
		t.Fatalf("SeedStaff: %v", err)
	}
	var count int64
	DB().Model(&entity.User{}).Count(&count)
	if count != 0 {
		t.Errorf("users = %d, want 0", count)
	}
}
