package catalog

// Product represents one catalog entry. JSON tags follow the camelCase
// convention used elsewhere in the project. Price is in whole THB.
type Product struct {
	ID          string `json:"productId"`
	Name        string `json:"productName"`
	Price       int    `json:"productPrice"`
	Description string `json:"productDesc"`
	Image       string `json:"productImg"`
}

// Categories contains the supported product categories in display order.
// The recommendation prompt constrains the model to exactly this set.
var Categories = []string{
	"Sports & Fitness",
	"Photography",
	"Cooking",
}

// defaultProducts is the fixed store catalog. It is seed data for the
// in-memory repository and is never mutated at runtime.
var defaultProducts = map[string][]Product{
	"Sports & Fitness": {
		{ID: "S001", Name: "Nike Air Zoom Pegasus", Price: 4500, Description: "รองเท้าวิ่งระดับพรีเมียม", Image: "https://picsum.photos/300/200?random=1"},
		{ID: "S002", Name: "Fitbit Charge 5", Price: 6900, Description: "สมาร์ทวอทช์สำหรับออกกำลังกาย", Image: "https://picsum.photos/300/200?random=2"},
		{ID: "S003", Name: "Yoga Mat Premium", Price: 1200, Description: "เสื่อโยคะคุณภาพสูง", Image: "https://picsum.photos/300/200?random=3"},
	},
	"Photography": {
		{ID: "P001", Name: "Sony A7 III", Price: 59900, Description: "กล้อง Mirrorless ระดับมืออาชีพ", Image: "https://picsum.photos/300/200?random=4"},
		{ID: "P002", Name: "DJI Mini 3 Pro", Price: 29900, Description: "โดรนถ่ายภาพขนาดพกพา", Image: "https://picsum.photos/300/200?random=5"},
		{ID: "P003", Name: "Peak Design Backpack", Price: 8900, Description: "กระเป๋ากล้องระดับพรีเมียม", Image: "https://picsum.photos/300/200?random=6"},
	},
	"Cooking": {
		{ID: "C001", Name: "Instant Pot Duo", Price: 3900, Description: "หม้อทำอาหารอเนกประสงค์", Image: "https://picsum.photos/300/200?random=7"},
		{ID: "C002", Name: "Vitamix Blender", Price: 15900, Description: "เครื่องปั่นระดับมืออาชีพ", Image: "https://picsum.photos/300/200?random=8"},
		{ID: "C003", Name: "Kitchen Scale Digital", Price: 890, Description: "เครื่องชั่งดิจิตอลแม่นยำสูง", Image: "https://picsum.photos/300/200?random=9"},
	},
}
