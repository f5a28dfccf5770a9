package entity

import (
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
)

// MenuItem is a sellable catalog entry. Identity is immutable once created;
// name, price, category and image reference are mutable through settings.
// Price is whole Kip, the smallest unit of the base currency.
type MenuItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    int64         `json:"price"`
	Category enum.Category `json:"category"`
	ImageRef string        `json:"imageUrl,omitempty"`
}

// DefaultMenu returns the built-in catalog used when the store holds no menu
// or the stored blob cannot be parsed.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "drink_001", Name: "Hot drip coffee", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Hot_drip_coffee.jpg"},
		{ID: "drink_002", Name: "Hot latte", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Hot_latte.jpg"},
		{ID: "drink_003", Name: "Hot cappuccino", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Hot_cappuccino.jpg"},
		{ID: "drink_004", Name: "Espresso", Price: 25000, Category: enum.CategoryDrink, ImageRef: "/images/Espresso.jpg"},
		{ID: "drink_005", Name: "Hot cocoa", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Hot_cocoa.jpg"},
		{ID: "drink_006", Name: "Americano", Price: 30000, Category: enum.CategoryDrink, ImageRef: "/images/Americano.jpg"},
		{ID: "drink_007", Name: "Hot chocolate", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Hot_chocolate.jpg"},
		{ID: "drink_008", Name: "Matcha latte", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Matcha_latte.jpg"},
		{ID: "drink_009", Name: "Iced latte", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_latte.jpg"},
		{ID: "drink_010", Name: "Iced americano", Price: 30000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_americano.jpg"},
		{ID: "drink_011", Name: "Cold brewed", Price: 30000, Category: enum.CategoryDrink, ImageRef: "/images/Cold_brewed.jpg"},
		{ID: "drink_012", Name: "Lemonade", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Lemonade.jpg"},
		{ID: "drink_013", Name: "Butterfly pea lemon soda", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Butterfly_pea_lemon_soda.jpg"},
		{ID: "drink_014", Name: "Iced black coffee", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_black_coffee.jpg"},
		{ID: "drink_015", Name: "Orange coffee", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Orange_coffee.jpg"},
		{ID: "drink_016", Name: "Iced mocha", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_mocha.jpg"},
		{ID: "drink_017", Name: "Iced cappuccino", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_cappuccino.jpg"},
		{ID: "drink_018", Name: "Rooibos tea", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Rooibos_tea.jpg"},
		{ID: "drink_019", Name: "Iced chocolate", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Iced_chocolate.jpg"},
		{ID: "drink_020", Name: "Mocha shake", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Mocha_shake.jpg"},
		{ID: "drink_021", Name: "Chocolate shake", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Chocolate_shake.jpg"},
		{ID: "drink_022", Name: "Yogurt mango shake", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Yogurt_mango_shake.jpg"},
		{ID: "drink_023", Name: "Pineapple shake", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Pineapple_shake.jpg"},
		{ID: "drink_024", Name: "Mango shake", Price: 35000, Category: enum.CategoryDrink, ImageRef: "/images/Mango_shake.jpg"},
		{ID: "drink_025", Name: "Apple shake", Price: 30000, Category: enum.CategoryDrink, ImageRef: "/images/Apple_shake.jpg"},
		{ID: "drink_026", Name: "Dragon shake", Price: 30000, Category: enum.CategoryDrink, ImageRef: "/images/Dragon_shake.jpg"},
		{ID: "drink_027", Name: "Mixed fruit shake", Price: 40000, Category: enum.CategoryDrink, ImageRef: "/images/Mixed_fruit_shake.jpg"},
		{ID: "drink_028", Name: "Soda Lao", Price: 15000, Category: enum.CategoryDrink, ImageRef: "/images/Soda_Lao.jpg"},
		{ID: "food_001", Name: "A set bread", Price: 100000, Category: enum.CategoryFood, ImageRef: "/images/A_set_bread.jpg"},
		{ID: "food_002", Name: "B set bread", Price: 100000, Category: enum.CategoryFood, ImageRef: "/images/B_set_bread.jpg"},
		{ID: "food_003", Name: "French toast set", Price: 80000, Category: enum.CategoryFood, ImageRef: "/images/French_toast_set.jpg"},
		{ID: "food_004", Name: "French toast with fruit", Price: 70000, Category: enum.CategoryFood, ImageRef: "/images/French_toast_with_fruit.jpg"},
		{ID: "food_005", Name: "Curry and rice set", Price: 100000, Category: enum.CategoryFood, ImageRef: "/images/Curry_and_rice_set.jpg"},
		{ID: "food_006", Name: "Spaghetti set", Price: 80000, Category: enum.CategoryFood, ImageRef: "/images/Spaghetti_set.jpg"},
		{ID: "food_007", Name: "Carbonara set", Price: 80000, Category: enum.CategoryFood, ImageRef: "/images/Carbonara_set.jpg"},
		{ID: "food_008", Name: "Curry and rice", Price: 70000, Category: enum.CategoryFood, ImageRef: "/images/Curry_and_rice.jpg"},
		{ID: "food_009", Name: "Spaghetti", Price: 70000, Category: enum.CategoryFood, ImageRef: "/images/Spaghetti.jpg"},
		{ID: "food_010", Name: "Carbonara", Price: 70000, Category: enum.CategoryFood, ImageRef: "/images/Carbonara.jpg"},
		{ID: "food_011", Name: "HOP bun", Price: 35000, Category: enum.CategoryFood, ImageRef: "/images/HOP_bun.jpg"},
		{ID: "food_012", Name: "Fried egg", Price: 10000, Category: enum.CategoryFood, ImageRef: "/images/Fried_egg.jpg"},
		{ID: "food_013", Name: "Pudding", Price: 35000, Category: enum.CategoryFood, ImageRef: "/images/Pudding.jpg"},
		{ID: "cookie_001", Name: "Cookies", Price: 25000, Category: enum.CategoryCookie, ImageRef: "/images/Cookies.jpg"},
		{ID: "cookie_002", Name: "Sabaidee Laos", Price: 200000, Category: enum.CategoryCookie, ImageRef: "/images/Sabaidee_Laos.jpg"},
		{ID: "cookie_003", Name: "Sabaidee cookies box", Price: 70000, Category: enum.CategoryCookie, ImageRef: "/images/Sabaidee_cookies_box.jpg"},
		{ID: "cookie_004", Name: "70th anniversary cookies box", Price: 80000, Category: enum.CategoryCookie, ImageRef: "/images/70th_anniversary_cookies_box.jpg"},
		{ID: "cookie_005", Name: "Lanexang cookies box", Price: 70000, Category: enum.CategoryCookie, ImageRef: "/images/Lanexang_cookies_box.jpg"},
		{ID: "cookie_006", Name: "Patuxay cookies box", Price: 65000, Category: enum.CategoryCookie, ImageRef: "/images/Patuxay_cookies_box.jpg"},
		{ID: "cookie_007", Name: "Dokmai Lao cookies box", Price: 65000, Category: enum.CategoryCookie, ImageRef: "/images/Dokmai_Lao_cookies_box.jpg"},
		{ID: "other_001", Name: "Lao sign language", Price: 65000, Category: enum.CategoryOther, ImageRef: "/images/Lao_sign_language.jpg"},
	}
}
