package seed

import "github.com/shopspring/decimal"

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@example.com"
)

type serviceTemplate struct {
	Name        string
	Price       int64
	DurationMin int
	Description string
	Category    string
	Discount    int64
}

type barberTemplate struct {
	Name   string
	Avatar string
}

type shopTemplate struct {
	Name             string
	Address          string
	Rating           float64
	ReviewsCount     string
	Image            string
	Logo             string
	Status           string
	OpeningHours     string
	Phone            string
	Tags             []string
	MainServicePrice int64
	MainServiceName  string
	BarberIndices    []int
}

func price(v int64) decimal.Decimal {
	return decimal.New(v, 0)
}

// every shop offers the same services
var serviceTemplates = []serviceTemplate{
	{Name: "Corte Degradê", Price: 45, DurationMin: 45, Description: "Corte moderno com acabamento em navalha, inclui lavagem e finalização com pomada.", Category: "Cabelo"},
	{Name: "Barba Terapia", Price: 35, DurationMin: 30, Description: "Ritual completo de barba com toalha quente, massagem facial e hidratação.", Category: "Barba"},
	{Name: "Combo Viking", Price: 70, DurationMin: 75, Description: "O pacote completo: Corte de cabelo + Barba Terapia. Saia pronto para a batalha.", Category: "Combo", Discount: 10},
	{Name: "Sobrancelha", Price: 15, DurationMin: 15, Description: "Design e limpeza de sobrancelha com navalha ou pinça.", Category: "Outros"},
	{Name: "Pigmentação", Price: 30, DurationMin: 25, Description: "Pintura para disfarçar falhas na barba ou cabelo, efeito natural.", Category: "Barba"},
	{Name: "Serviço Premium", Price: 100, DurationMin: 90, Description: "Corte, barba e massagem facial completa.", Category: "Combo"},
	{Name: "Pezinho (Acabamento)", Price: 20, DurationMin: 20, Description: "Apenas o acabamento nas laterais e nuca para manter o corte em dia.", Category: "Cabelo"},
}

var barberTemplates = []barberTemplate{
	{Name: `Carlos "Navalha"`, Avatar: "https://picsum.photos/id/1005/100/100"},
	{Name: "André Silva", Avatar: "https://picsum.photos/id/1012/100/100"},
	{Name: "Marcos Santos", Avatar: "https://picsum.photos/id/1025/100/100"},
	{Name: "Pedro Alves", Avatar: "https://picsum.photos/id/1006/100/100"},
}

var shopTemplates = []shopTemplate{
	{
		Name:             "Barbearia Viking",
		Address:          "Rua das Flores, 123 - Centro",
		Rating:           4.8,
		ReviewsCount:     "120 avaliações",
		Image:            "https://picsum.photos/id/1062/800/600",
		Logo:             "https://picsum.photos/id/1074/200/200",
		Status:           "Aberto",
		OpeningHours:     "09:00 - 20:00",
		Phone:            "(11) 99999-8888",
		Tags:             []string{"Corte", "Barba", "Sobrancelha"},
		MainServicePrice: 45,
		MainServiceName:  "Corte Degradê",
		BarberIndices:    []int{0, 1, 2},
	},
	{
		Name:             "Estilo & Navalha",
		Address:          "Vila Madalena, SP",
		Rating:           4.7,
		ReviewsCount:     "85 avaliações",
		Image:            "https://picsum.photos/id/1070/800/600",
		Logo:             "https://picsum.photos/id/1076/200/200",
		Status:           "Fechado",
		OpeningHours:     "10:00 - 22:00",
		Phone:            "(11) 98888-7777",
		Tags:             []string{"Corte", "Barboterapia"},
		MainServicePrice: 60,
		MainServiceName:  "Corte + Barba",
		BarberIndices:    []int{1, 2},
	},
	{
		Name:             "Gentleman's Club",
		Address:          "Jardins, São Paulo",
		Rating:           5.0,
		ReviewsCount:     "210 avaliações",
		Image:            "https://picsum.photos/id/1081/800/600",
		Logo:             "https://picsum.photos/id/1084/200/200",
		Status:           "Aberto",
		OpeningHours:     "08:00 - 19:00",
		Phone:            "(11) 97777-6666",
		Tags:             []string{"Completo", "Massagem"},
		MainServicePrice: 80,
		MainServiceName:  "Serviço Premium",
		BarberIndices:    []int{0, 2, 3},
	},
}
