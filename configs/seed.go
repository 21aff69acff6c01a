package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้างบัญชีพนักงานตาม role ครั้งแรก (รหัสผ่านตั้งผ่าน env)
func SeedStaff() error {
	db := DB()
	pass := getEnv("STAFF_PASSWORD", "")
	if pass == "" {
		log.Println("⚠️ skip seeding staff: missing STAFF_PASSWORD")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := []entity.User{
		{Email: "admin@pos.local", FirstName: "Admin", LastName: "Seed", Role: entity.RoleAdmin},
		{Email: "cashier@pos.local", FirstName: "Cashier", LastName: "Seed", Role: entity.RoleCashier},
		{Email: "waiter@pos.local", FirstName: "Waiter", LastName: "Seed", Role: entity.RoleWaiter},
		{Email: "chef@pos.local", FirstName: "Chef", LastName: "Seed", Role: entity.RoleChef},
	}
	for _, u := range staff {
		var count int64
		db.Model(&entity.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		u.Password = string(hash)
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed โต๊ะ + หมวดหมู่ + เมนูเริ่มต้น
func SeedLookups() error {
	db := DB()

	for n := 1; n <= 8; n++ {
		var count int64
		db.Model(&entity.Table{}).Where("number = ?", n).Count(&count)
		if count == 0 {
			if err := db.Create(&entity.Table{Number: n, Status: entity.TableAvailable}).Error; err != nil {
				return err
			}
		}
	}

	categories := []string{"Main", "Drinks", "Desserts"}
	for _, name := range categories {
		var cat entity.Category
		if err := db.Where("category_name = ?", name).First(&cat).Error; err != nil {
			cat = entity.Category{CategoryName: name}
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
		}
	}

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	var main, drinks entity.Category
	db.Where("category_name = ?", "Main").First(&main)
	db.Where("category_name = ?", "Drinks").First(&drinks)

	items := []entity.MenuItem{
		{ItemName: "Pad Krapow", Price: 65, Stock: 40, CategoryID: main.ID,
			Modifiers: []string{"Extra Spicy", "Fried Egg"}},
		{ItemName: "Khao Man Gai", Price: 60, Stock: 30, CategoryID: main.ID},
		{ItemName: "Thai Iced Tea", Price: 35, Stock: 50, CategoryID: drinks.ID,
			Modifiers: []string{"Less Sweet"}},
	}
	for _, it := range items {
		if err := db.Create(&it).Error; err != nil {
			return err
		}
	}
	return nil
}
