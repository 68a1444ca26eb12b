package database

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email   string
	name    string
	role    string
	class   string
	balance float64
}

type seedMenuItem struct {
	name     string
	mealType string
	price    float64
	calories int64
}

// Demo fixtures matching the web application's own bootstrap data, so
// reports generated against a seeded database look like reports generated
// against a real one.
var (
	seedUsers = []seedUser{
		{email: "student@school.ru", name: "Петров Алексей", role: "student", class: "9А", balance: 1500},
		{email: "cook@school.ru", name: "Сидорова Мария", role: "cook"},
		{email: "admin@school.ru", name: "Иванов Сергей", role: "admin"},
	}

	seedMenu = []seedMenuItem{
		{name: "Каша овсяная с фруктами", mealType: "breakfast", price: 80, calories: 250},
		{name: "Омлет с сыром", mealType: "breakfast", price: 95, calories: 320},
		{name: "Блинчики с творогом", mealType: "breakfast", price: 110, calories: 380},
		{name: "Йогурт с мюсли", mealType: "breakfast", price: 75, calories: 200},
		{name: "Борщ украинский", mealType: "lunch", price: 120, calories: 280},
		{name: "Котлета куриная с пюре", mealType: "lunch", price: 150, calories: 450},
		{name: "Рыба запеченная с овощами", mealType: "lunch", price: 180, calories: 380},
		{name: "Макароны с сыром", mealType: "lunch", price: 100, calories: 420},
		{name: "Салат овощной", mealType: "lunch", price: 70, calories: 120},
		{name: "Компот из сухофруктов", mealType: "lunch", price: 30, calories: 80},
	}
)

const seedPassword = "123456"

// Seed inserts the demo accounts and menu when the database is empty.
// Re-running against an already seeded database is a no-op.
func (d *DB) Seed(ctx context.Context) error {
	var users int
	if err := d.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM user`).Scan(&users); err != nil {
		return fmt.Errorf("check existing users: %w", err)
	}
	if users > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, u := range seedUsers {
		var class any
		if u.class != "" {
			class = u.class
		}
		_, err := d.SQL.ExecContext(ctx,
			`INSERT INTO user (email, password_hash, name, role, student_class, balance)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			u.email, string(hash), u.name, u.role, class, u.balance)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	for _, m := range seedMenu {
		_, err := d.SQL.ExecContext(ctx,
			`INSERT INTO menu_item (name, meal_type, price, calories) VALUES (?, ?, ?, ?)`,
			m.name, m.mealType, m.price, m.calories)
		if err != nil {
			return fmt.Errorf("seed menu item %s: %w", m.name, err)
		}
	}
	return nil
}
