package analytics

// Fixed keyword tables for categorical item classification. Matching is
// always substring, case-insensitive, against the lowercased item name.
// An item may match more than one table.

var foodCategoryKeywords = map[string][]string{
	"Burger":       {"burger", "patty"},
	"Pizza":        {"pizza"},
	"Rice/Biriyani": {"rice", "biriyani", "biryani", "khichuri", "polao", "pulao"},
	"Chicken":      {"chicken", "wings", "nugget"},
	"Fast Food":    {"fries", "sandwich", "hot dog", "hotdog", "shawarma", "roll", "wrap"},
	"Drinks":       {"coke", "pepsi", "sprite", "juice", "lassi", "coffee", "tea", "shake", "smoothie", "cola", "water", "drink"},
	"Dessert":      {"cake", "ice cream", "icecream", "brownie", "pudding", "dessert", "sweet", "chocolate", "donut", "doughnut"},
	"Pasta":        {"pasta", "spaghetti", "noodle", "chowmein", "chow mein", "ramen", "lasagna"},
	"Healthy":      {"salad", "grilled", "steamed", "soup", "fruit", "vegetable", "veggie"},
}

var drinkKeywords = []string{
	"coke", "pepsi", "sprite", "juice", "lassi", "coffee", "tea", "shake",
	"smoothie", "cola", "water", "drink", "borhani", "mojito",
}

var dessertKeywords = []string{
	"cake", "ice cream", "icecream", "brownie", "pudding", "dessert",
	"sweet", "chocolate", "donut", "doughnut", "pastry", "pie",
}

var healthyKeywords = []string{
	"salad", "grilled", "steamed", "soup", "fruit", "vegetable", "veggie",
	"brown rice", "oats", "boiled",
}

var indulgentKeywords = []string{
	"burger", "pizza", "fried", "fries", "cheese", "cake", "ice cream",
	"chocolate", "brownie", "donut", "doughnut", "milkshake", "bbq",
}
