package impl

import (
	"strconv"

	"surplus/internal/domain/entity"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"
)

const birthdayLayout = "2006-01-02"

// viewMapper builds the typed response views. One method per response shape.
type viewMapper struct {
	humanizer service.Humanizer
	storage   service.FileStorage
}

func newViewMapper(humanizer service.Humanizer, storage service.FileStorage) *viewMapper {
	return &viewMapper{humanizer: humanizer, storage: storage}
}

func (m *viewMapper) profile(user *entity.User) *usecase.ProfileView {
	view := &usecase.ProfileView{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
	if p := user.Profile; p != nil {
		view.Name = p.Name
		view.PhoneNumber = p.PhoneNumber
		view.Gender = string(p.Gender)
		if !p.Birthday.IsZero() {
			view.Birthday = p.Birthday.Format(birthdayLayout)
		}
		view.Image = m.storage.URL(p.Image)
	}

	return view
}

func (m *viewMapper) category(c *entity.Category) *usecase.CategoryView {
	return &usecase.CategoryView{
		ID:    c.ID,
		Name:  c.Name,
		Image: m.storage.URL(c.Image),
	}
}

func (m *viewMapper) categories(categories []*entity.Category) []*usecase.CategoryView {
	views := make([]*usecase.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, m.category(c))
	}

	return views
}

func (m *viewMapper) product(p *entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		ID:                  p.ID,
		Name:                p.Name,
		Price:               p.Price,
		Description:         p.Description,
		ExpireTime:          p.ExpireTime,
		Image:               m.storage.URL(p.Image),
		ShopName:            p.Shop.Name,
		ShopAddress:         p.Shop.Address,
		ExpireTimeHumanized: m.humanizer.RelativeTime(p.ExpireTime),
	}
}

func (m *viewMapper) products(products []*entity.Product) []*usecase.ProductView {
	views := make([]*usecase.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, m.product(p))
	}

	return views
}

func (m *viewMapper) productLine(productID int64, p *entity.Product) usecase.WishlistItemView {
	view := usecase.WishlistItemView{ProductID: strconv.FormatInt(productID, 10)}
	if p == nil {
		return view
	}

	view.ProductName = p.Name
	view.ProductPrice = p.Price
	view.ProductDescription = p.Description
	view.ProductExpireTime = p.ExpireTime
	view.ProductImage = m.storage.URL(p.Image)
	view.ProductShopName = p.Shop.Name
	view.ProductShopAddress = p.Shop.Address
	view.ProductExpireTimeHumanized = m.humanizer.RelativeTime(p.ExpireTime)

	return view
}

func (m *viewMapper) wishlistItems(entries []*entity.WishlistEntry) []*usecase.WishlistItemView {
	views := make([]*usecase.WishlistItemView, 0, len(entries))
	for _, e := range entries {
		line := m.productLine(e.ProductID, e.Product)
		views = append(views, &line)
	}

	return views
}

func (m *viewMapper) cartItems(items []*entity.CartItem) []*usecase.CartItemView {
	views := make([]*usecase.CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, &usecase.CartItemView{
			WishlistItemView: m.productLine(item.ProductID, item.Product),
			Quantity:         item.Quantity,
			OrderData:        item.CreatedAt,
		})
	}

	return views
}

func (m *viewMapper) order(cart *entity.Cart) *usecase.OrderView {
	view := &usecase.OrderView{
		CartID:    cart.DisplayID,
		Status:    string(cart.Status),
		OrderedAt: cart.OrderedAt,
		Items:     m.cartItems(cart.Items),
	}
	for _, item := range cart.Items {
		if item.Product != nil {
			view.Total += item.Product.Price * float64(item.Quantity)
		}
	}

	return view
}
