package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceDocument struct {
	ID          uint      `json:"id"`
	Shop        uint      `json:"shop"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	DurationMin int       `json:"duration_min"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Discount    *string   `json:"discount"`
	CreatedAt   time.Time `json:"created_at"`
}

type BarberDocument struct {
	ID     uint   `json:"id"`
	Shop   uint   `json:"shop"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ReviewDocument struct {
	ID        uint          `json:"id"`
	User      AccountPublic `json:"user"`
	Shop      uint          `json:"shop"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
}

// ShopDocument inlines the shop's services, barbers and reviews.
type ShopDocument struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           float64  `json:"rating"`
	ReviewsCount     string   `json:"reviews_count"`
	Image            string   `json:"image"`
	Logo             *string  `json:"logo"`
	Status           string   `json:"status"`
	OpeningHours     string   `json:"opening_hours"`
	Phone            string   `json:"phone"`
	Tags             []string `json:"tags"`
	MainServicePrice string   `json:"main_service_price"`
	MainServiceName  string   `json:"main_service_name"`

	Services []ServiceDocument `json:"services"`
	Barbers  []BarberDocument  `json:"barbers"`
	Reviews  []ReviewDocument  `json:"reviews"`
}

// money renders a price with two decimals, as numeric(6,2) stores it.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewServiceDocument(s models.Service) ServiceDocument {
	doc := ServiceDocument{
		ID:          s.ID,
		Shop:        s.ShopID,
		Name:        s.Name,
		Price:       money(s.Price),
		DurationMin: s.DurationMin,
		Description: s.Description,
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
	}
	if s.Discount != nil {
		d := money(*s.Discount)
		doc.Discount = &d
	}
	return doc
}

func NewServiceDocuments(services []models.Service) []ServiceDocument {
	docs := make([]ServiceDocument, 0, len(services))
	for _, s := range services {
		docs = append(docs, NewServiceDocument(s))
	}
	return docs
}

func NewBarberDocument(b models.Barber) BarberDocument {
	return BarberDocument{
		ID:     b.ID,
		Shop:   b.ShopID,
		Name:   b.Name,
		Avatar: b.Avatar,
	}
}

func NewBarberDocuments(barbers []models.Barber) []BarberDocument {
	docs := make([]BarberDocument, 0, len(barbers))
	for _, b := range barbers {
		docs = append(docs, NewBarberDocument(b))
	}
	return docs
}

// NewReviewDocument expects r.Account to be loaded.
func NewReviewDocument(r models.Review) ReviewDocument {
	return ReviewDocument{
		ID:        r.ID,
		User:      NewAccountPublic(r.Account),
		Shop:      r.ShopID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func NewReviewDocuments(reviews []models.Review) []ReviewDocument {
	docs := make([]ReviewDocument, 0, len(reviews))
	for _, r := range reviews {
		docs = append(docs, NewReviewDocument(r))
	}
	return docs
}

func NewShopDocument(s models.Shop) ShopDocument {
	tags := make([]string, 0, len(s.Tags))
	tags = append(tags, s.Tags...)

	return ShopDocument{
		ID:               s.ID,
		Name:             s.Name,
		Address:          s.Address,
		Rating:           s.Rating,
		ReviewsCount:     s.ReviewsCount,
		Image:            s.Image,
		Logo:             s.Logo,
		Status:           s.Status,
		OpeningHours:     s.OpeningHours,
		Phone:            s.Phone,
		Tags:             tags,
		MainServicePrice: money(s.MainServicePrice),
		MainServiceName:  s.MainServiceName,
		Services:         NewServiceDocuments(s.Services),
		Barbers:          NewBarberDocuments(s.Barbers),
		Reviews:          NewReviewDocuments(s.Reviews),
	}
}

func NewShopDocuments(shops []models.Shop) []ShopDocument {
	docs := make([]ShopDocument, 0, len(shops))
	for _, s := range shops {
		docs = append(docs, NewShopDocument(s))
	}
	return docs
}
