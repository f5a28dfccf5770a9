package enum

import "encoding/json"

// Category groups menu items for the catalog tabs.
type Category int

const (
	CategoryDrink  Category = 0
	CategoryFood   Category = 1
	CategoryCookie Category = 2
	CategoryOther  Category = 3
)

func (c Category) String() string {
	names := [...]string{"Drink", "Food", "Cookie", "Other"}
	if c < 0 || int(c) >= len(names) {
		return "Other"
	}
	return names[c]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = Category(i)
		return nil
	}
	switch str {
	case "Drink":
		*c = CategoryDrink
	case "Food":
		*c = CategoryFood
	case "Cookie":
		*c = CategoryCookie
	case "Other":
		*c = CategoryOther
	}
	return nil
}

// ParseCategory maps a category name to its enum value; unknown names
// collapse to CategoryOther.
func ParseCategory(name string) Category {
	switch name {
	case "Drink":
		return CategoryDrink
	case "Food":
		return CategoryFood
	case "Cookie":
		return CategoryCookie
	}
	return CategoryOther
}
