package catalog

// ShopStatus is the storefront availability label shown to customers.
type ShopStatus string

const (
	ShopOpen          ShopStatus = "Aberto"
	ShopClosed        ShopStatus = "Fechado"
	ShopFullySchedule ShopStatus = "Agenda Cheia"
	ShopAtCapacity    ShopStatus = "Lotado"
)

func (s ShopStatus) Valid() bool {
	switch s {
	case ShopOpen, ShopClosed, ShopFullySchedule, ShopAtCapacity:
		return true
	}
	return false
}

func DefaultShopStatus() ShopStatus {
	return ShopOpen
}
