package catalog

type ServiceCategory string

const (
	CategoryHair  ServiceCategory = "Cabelo"
	CategoryBeard ServiceCategory = "Barba"
	CategoryCombo ServiceCategory = "Combo"
	CategoryOther ServiceCategory = "Outros"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryHair, CategoryBeard, CategoryCombo, CategoryOther:
		return true
	}
	return false
}

func DefaultCategory() ServiceCategory {
	return CategoryOther
}

const (
	MinShopRating = 0.0
	MaxShopRating = 5.0

	MinReviewRating = 1
	MaxReviewRating = 5
)
