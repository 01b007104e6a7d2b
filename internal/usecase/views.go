package usecase

import "time"

// ProfileView is the profile response shape.
type ProfileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday"`
	Image       string `json:"image"`
}

// CategoryView is the category response shape.
type CategoryView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ProductView is the product response shape used by listings and search.
type ProductView struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Price               float64   `json:"price"`
	Description         string    `json:"description"`
	ExpireTime          time.Time `json:"expire_time"`
	Image               string    `json:"image"`
	ShopName            string    `json:"shop_name"`
	ShopAddress         string    `json:"shop_address"`
	ExpireTimeHumanized string    `json:"expire_time_humified"`
}

// HomeScreenView is the home screen response shape.
type HomeScreenView struct {
	Categories []*CategoryView `json:"categories"`
	RunningOut []*ProductView  `json:"running_out"`
}

// WishlistItemView is the wishlist entry response shape.
type WishlistItemView struct {
	ProductID                  string    `json:"product_id"`
	ProductName                string    `json:"product_name"`
	ProductPrice               float64   `json:"product_price"`
	ProductDescription         string    `json:"product_description"`
	ProductExpireTime          time.Time `json:"product_expire_time"`
	ProductImage               string    `json:"product_image"`
	ProductShopName            string    `json:"product_shop_name"`
	ProductShopAddress         string    `json:"product_shop_address"`
	ProductExpireTimeHumanized string    `json:"product_expire_time_humified"`
}

// CartItemView is the cart item response shape.
type CartItemView struct {
	WishlistItemView
	Quantity  int       `json:"quantity"`
	OrderData time.Time `json:"order_data"` // When the item was first added.
}

// OrderView is a placed cart.
type OrderView struct {
	CartID    string          `json:"cart_id"`
	Status    string          `json:"status"`
	OrderedAt *time.Time      `json:"ordered_at"`
	Total     float64         `json:"total"`
	Items     []*CartItemView `json:"items"`
}
