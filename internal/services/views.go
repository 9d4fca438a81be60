// internal/services/views.go
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/models"
)

// Response shapes shared by catalog, cart and order endpoints. Stored image
// file names are resolved to public URLs exactly once, here.

const fileTypeProducts = "products"

type ProductResponse struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Price         float64       `json:"price"`
	UnitOfMeasure string        `json:"unit_of_measure"`
	Description   string        `json:"description,omitempty"`
	Slug          string        `json:"slug"`
	Stock         int           `json:"stock"`
	IsFeatured    bool          `json:"is_featured"`
	Category      *CategoryRef  `json:"category,omitempty"`
	Tags          []TagRef      `json:"tags"`
	Images        []string      `json:"images"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TagRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewProductResponse(product *models.Product, files FileURLResolver) ProductResponse {
	images := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, files.PublicURL(fileTypeProducts, img.FileName))
	}

	tags := make([]TagRef, 0, len(product.Tags))
	for _, tag := range product.Tags {
		tags = append(tags, TagRef{ID: tag.ID, Name: tag.Name})
	}

	resp := ProductResponse{
		ID:            product.ID,
		Title:         product.Title,
		Price:         product.Price,
		UnitOfMeasure: product.UnitOfMeasure,
		Description:   product.Description,
		Slug:          product.Slug,
		Stock:         product.Stock,
		IsFeatured:    product.IsFeatured,
		Tags:          tags,
		Images:        images,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}

	if product.Category.ID != uuid.Nil {
		resp.Category = &CategoryRef{ID: product.Category.ID, Name: product.Category.Name}
	}

	return resp
}

type CartResponse struct {
	ID           uuid.UUID          `json:"id"`
	IsCheckedOut bool               `json:"is_checked_out"`
	Items        []CartItemResponse `json:"items"`
	Total        float64            `json:"total"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type CartItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

func NewCartResponse(cart *models.Cart, files FileURLResolver) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	total := 0.0
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, CartItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  NewProductResponse(&item.Product, files),
		})
		total += float64(item.Quantity) * item.Product.Price
	}

	return CartResponse{
		ID:           cart.ID,
		IsCheckedOut: cart.IsCheckedOut,
		Items:        items,
		Total:        total,
		UpdatedAt:    cart.UpdatedAt,
	}
}

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	Status      models.OrderStatus  `json:"status"`
	Total       float64             `json:"total"`
	Notes       string              `json:"notes,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	Shipping    models.JSONB        `json:"shipping"`
	Billing     models.JSONB        `json:"billing,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	ID        uuid.UUID    `json:"id"`
	Quantity  int          `json:"quantity"`
	UnitPrice float64      `json:"unit_price"`
	Subtotal  float64      `json:"subtotal"`
	Product   models.JSONB `json:"product"`
}

// NewOrderResponse prefers live rows and falls back to the snapshots frozen
// at checkout, so orders stay renderable after catalog or account edits.
func NewOrderResponse(order *models.Order, files FileURLResolver) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]

		var product models.JSONB
		if item.Product != nil {
			product = item.Product.Snapshot()
		} else {
			product = item.ProductSnapshot
		}
		product = resolveSnapshotImages(product, files)

		items = append(items, OrderItemResponse{
			ID:        item.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  float64(item.Quantity) * item.UnitPrice,
			Product:   product,
		})
	}

	shipping := order.ShippingSnapshot
	if order.ShippingAddress != nil {
		shipping = order.ShippingAddress.Snapshot()
	}

	billing := order.BillingSnapshot
	if order.BillingProfile != nil {
		billing = order.BillingProfile.Snapshot()
	}

	return OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Notes:       order.Notes,
		Items:       items,
		Shipping:    shipping,
		Billing:     billing,
		CreatedAt:   order.CreatedAt,
	}
}

// resolveSnapshotImages maps the snapshot's stored file names to URLs without
// mutating the persisted snapshot.
func resolveSnapshotImages(snapshot models.JSONB, files FileURLResolver) models.JSONB {
	if snapshot == nil {
		return nil
	}

	raw, ok := snapshot["images"].([]interface{})
	if !ok {
		return snapshot
	}

	out := make(models.JSONB, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}

	urls := make([]interface{}, 0, len(raw))
	for _, entry := range raw {
		if name, ok := entry.(string); ok {
			urls = append(urls, files.PublicURL(fileTypeProducts, name))
		}
	}
	out["images"] = urls
	return out
}
