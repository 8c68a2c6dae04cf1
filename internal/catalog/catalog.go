package catalog

import (
	"github.com/shopspring/decimal"

	"doceencanto/internal/models"
)

// Categories lists the menu categories in display order. The first entry is
// the sentinel that shows everything.
var Categories = []models.Category{
	{ID: "todos", Name: "Todos", Icon: "🍬"},
	{ID: "brigadeiros", Name: "Brigadeiros", Icon: "🍫"},
	{ID: "brownies", Name: "Brownies", Icon: "🍪"},
	{ID: "donuts", Name: "Donuts", Icon: "🍩"},
	{ID: "cupcakes", Name: "Cupcakes", Icon: "🧁"},
	{ID: "trufas", Name: "Trufas", Icon: "🍬"},
	{ID: "personalizados", Name: "Personalizados", Icon: "🎁"},
	{ID: "kits", Name: "Kits Especiais", Icon: "🎂"},
}

var products = []models.Product{
	// Brigadeiros
	{
		ID:              "brig-tradicional",
		Name:            "Brigadeiro Tradicional",
		Description:     "O clássico que nunca sai de moda, feito com chocolate belga",
		FullDescription: "Nosso brigadeiro tradicional é preparado com chocolate belga de alta qualidade, leite condensado especial e manteiga artesanal. Cada unidade é enrolada à mão e finalizada com granulado premium.",
		Price:           decimal.NewFromFloat(4.50),
		PriceNote:       "unidade",
		Image:           "/static/images/brigadeiros.jpg",
		Category:        "brigadeiros",
		Tag:             models.TagBestSeller,
		Ingredients:     []string{"Chocolate belga", "Leite condensado", "Manteiga", "Granulado"},
		Allergens:       []string{"Leite", "Glúten"},
	},
	{
		ID:          "brig-ninho",
		Name:        "Brigadeiro de Ninho",
		Description: "Cremoso brigadeiro de leite ninho com toque de baunilha",
		Price:       decimal.NewFromFloat(5.00),
		PriceNote:   "unidade",
		Image:       "/static/images/brigadeiros.jpg",
		Category:    "brigadeiros",
		Ingredients: []string{"Leite ninho", "Leite condensado", "Manteiga", "Baunilha"},
		Allergens:   []string{"Leite"},
	},
	{
		ID:          "brig-pistache",
		Name:        "Brigadeiro de Pistache",
		Description: "Exclusivo brigadeiro de pistache importado da Sicília",
		Price:       decimal.NewFromFloat(7.00),
		PriceNote:   "unidade",
		Image:       "/static/images/brigadeiros.jpg",
		Category:    "brigadeiros",
		Tag:         models.TagPremium,
		Ingredients: []string{"Pasta de pistache", "Leite condensado", "Manteiga"},
		Allergens:   []string{"Leite", "Nozes"},
	},
	{
		ID:          "brig-cafe",
		Name:        "Brigadeiro de Café",
		Description: "Para os amantes de café, sabor intenso e aromático",
		Price:       decimal.NewFromFloat(5.50),
		PriceNote:   "unidade",
		Image:       "/static/images/brigadeiros.jpg",
		Category:    "brigadeiros",
		Tag:         models.TagNew,
		Ingredients: []string{"Café especial", "Chocolate", "Leite condensado", "Manteiga"},
		Allergens:   []string{"Leite"},
	},
	{
		ID:          "brig-churros",
		Name:        "Brigadeiro de Churros",
		Description: "Com doce de leite e canela, uma explosão de sabor",
		Price:       decimal.NewFromFloat(5.50),
		PriceNote:   "unidade",
		Image:       "/static/images/brigadeiros.jpg",
		Category:    "brigadeiros",
		Ingredients: []string{"Doce de leite", "Canela", "Leite condensado", "Manteiga"},
		Allergens:   []string{"Leite"},
	},
	// Brownies
	{
		ID:          "brownie-tradicional",
		Name:        "Brownie Tradicional",
		Description: "Chocolate belga intenso com nozes crocantes",
		Price:       decimal.NewFromFloat(12.00),
		PriceNote:   "unidade",
		Image:       "/static/images/brownies.jpg",
		Category:    "brownies",
		Tag:         models.TagBestSeller,
		Ingredients: []string{"Chocolate belga 70%", "Manteiga", "Nozes", "Açúcar mascavo"},
		Allergens:   []string{"Leite", "Nozes", "Glúten", "Ovos"},
	},
	{
		ID:          "brownie-caramelo",
		Name:        "Brownie de Caramelo Salgado",
		Description: "Recheio cremoso de caramelo salgado irresistível",
		Price:       decimal.NewFromFloat(14.00),
		PriceNote:   "unidade",
		Image:       "/static/images/brownies.jpg",
		Category:    "brownies",
		Tag:         models.TagPremium,
		Ingredients: []string{"Chocolate", "Caramelo salgado", "Flor de sal", "Nozes"},
		Allergens:   []string{"Leite", "Nozes", "Glúten", "Ovos"},
	},
	{
		ID:          "brownie-nutella",
		Name:        "Brownie de Nutella",
		Description: "Recheado e coberto com Nutella cremosa",
		Price:       decimal.NewFromFloat(14.00),
		PriceNote:   "unidade",
		Image:       "/static/images/brownies.jpg",
		Category:    "brownies",
		Tag:         models.TagNew,
		Ingredients: []string{"Chocolate", "Nutella", "Avelãs"},
		Allergens:   []string{"Leite", "Nozes", "Glúten", "Ovos"},
	},
	// Donuts
	{
		ID:          "donut-glaceado",
		Name:        "Donut Glaceado Clássico",
		Description: "Massa fofinha com cobertura açucarada perfeita",
		Price:       decimal.NewFromFloat(8.00),
		PriceNote:   "unidade",
		Image:       "/static/images/donuts.jpg",
		Category:    "donuts",
		Ingredients: []string{"Farinha especial", "Açúcar de confeiteiro", "Leite"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	{
		ID:          "donut-chocolate",
		Name:        "Donut de Chocolate",
		Description: "Cobertura de chocolate belga e granulado colorido",
		Price:       decimal.NewFromFloat(9.00),
		PriceNote:   "unidade",
		Image:       "/static/images/donuts.jpg",
		Category:    "donuts",
		Tag:         models.TagBestSeller,
		Ingredients: []string{"Chocolate belga", "Granulado", "Massa especial"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	{
		ID:          "donut-morango",
		Name:        "Donut de Morango",
		Description: "Glaceado rosa com recheio cremoso de morango",
		Price:       decimal.NewFromFloat(10.00),
		PriceNote:   "unidade",
		Image:       "/static/images/donuts.jpg",
		Category:    "donuts",
		Tag:         models.TagNew,
		Ingredients: []string{"Morango fresco", "Creme", "Açúcar"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	// Cupcakes
	{
		ID:          "cupcake-baunilha",
		Name:        "Cupcake de Baunilha",
		Description: "Massa amanteigada com buttercream de baunilha",
		Price:       decimal.NewFromFloat(9.00),
		PriceNote:   "unidade",
		Image:       "/static/images/cupcakes.jpg",
		Category:    "cupcakes",
		Ingredients: []string{"Baunilha de Madagascar", "Buttercream", "Manteiga"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	{
		ID:          "cupcake-redvelvet",
		Name:        "Cupcake Red Velvet",
		Description: "O clássico americano com cream cheese frosting",
		Price:       decimal.NewFromFloat(11.00),
		PriceNote:   "unidade",
		Image:       "/static/images/cupcakes.jpg",
		Category:    "cupcakes",
		Tag:         models.TagBestSeller,
		Ingredients: []string{"Cacau", "Cream cheese", "Buttermilk"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	{
		ID:          "cupcake-chocolate",
		Name:        "Cupcake Triplo Chocolate",
		Description: "Para os chocólatras: massa, recheio e cobertura de chocolate",
		Price:       decimal.NewFromFloat(12.00),
		PriceNote:   "unidade",
		Image:       "/static/images/cupcakes.jpg",
		Category:    "cupcakes",
		Tag:         models.TagPremium,
		Ingredients: []string{"Chocolate 70%", "Ganache", "Raspas de chocolate"},
		Allergens:   []string{"Leite", "Glúten", "Ovos"},
	},
	// Trufas
	{
		ID:          "trufa-champagne",
		Name:        "Trufa de Champagne",
		Description: "Sofisticada trufa com toque de champagne francês",
		Price:       decimal.NewFromFloat(8.00),
		PriceNote:   "unidade",
		Image:       "/static/images/trufas.jpg",
		Category:    "trufas",
		Tag:         models.TagPremium,
		Ingredients: []string{"Chocolate belga", "Champagne", "Creme de leite"},
		Allergens:   []string{"Leite", "Álcool"},
	},
	{
		ID:          "trufa-maracuja",
		Name:        "Trufa de Maracujá",
		Description: "Equilíbrio perfeito entre o azedo e o doce",
		Price:       decimal.NewFromFloat(6.00),
		PriceNote:   "unidade",
		Image:       "/static/images/trufas.jpg",
		Category:    "trufas",
		Ingredients: []string{"Chocolate branco", "Maracujá fresco", "Creme"},
		Allergens:   []string{"Leite"},
	},
	{
		ID:          "trufa-framboesa",
		Name:        "Trufa de Framboesa",
		Description: "Frutas vermelhas frescas com chocolate meio amargo",
		Price:       decimal.NewFromFloat(7.00),
		PriceNote:   "unidade",
		Image:       "/static/images/trufas.jpg",
		Category:    "trufas",
		Tag:         models.TagNew,
		Ingredients: []string{"Chocolate 60%", "Framboesa", "Creme"},
		Allergens:   []string{"Leite"},
	},
	{
		ID:          "trufa-70cacau",
		Name:        "Trufa 70% Cacau",
		Description: "Intensidade pura do chocolate para paladares exigentes",
		Price:       decimal.NewFromFloat(7.00),
		PriceNote:   "unidade",
		Image:       "/static/images/trufas.jpg",
		Category:    "trufas",
		Ingredients: []string{"Chocolate 70% cacau", "Creme de leite fresco"},
		Allergens:   []string{"Leite"},
	},
	// Personalizados
	{
		ID:          "pers-evento",
		Name:        "Doces para Evento",
		Description: "Criações exclusivas personalizadas para seu evento especial",
		Price:       decimal.Zero,
		PriceNote:   "sob consulta",
		Image:       "/static/images/personalizados.jpg",
		Category:    "personalizados",
		Tag:         models.TagPremium,
	},
	{
		ID:          "pers-casamento",
		Name:        "Mesa de Doces Casamento",
		Description: "Pacote completo para seu grande dia",
		Price:       decimal.Zero,
		PriceNote:   "sob consulta",
		Image:       "/static/images/personalizados.jpg",
		Category:    "personalizados",
	},
	// Kits
	{
		ID:              "kit-aniversario",
		Name:            "Kit Aniversário",
		Description:     "30 brigadeiros + 12 cupcakes + 6 brownies",
		FullDescription: "Seleção especial para celebrar datas memoráveis com doces exclusivos. Inclui 30 brigadeiros sortidos, 12 cupcakes decorados e 6 brownies premium.",
		Price:           decimal.NewFromFloat(189.00),
		PriceNote:       "kit",
		Image:           "/static/images/brigadeiros.jpg",
		Category:        "kits",
		Tag:             models.TagBestSeller,
	},
	{
		ID:              "kit-presente",
		Name:            "Kit Presente",
		Description:     "20 trufas + 15 brigadeiros + caixa premium",
		FullDescription: "Perfeito para surpreender quem você ama com elegância. Embalagem especial de presente.",
		Price:           decimal.NewFromFloat(129.00),
		PriceNote:       "kit",
		Image:           "/static/images/trufas.jpg",
		Category:        "kits",
	},
	{
		ID:              "kit-casal",
		Name:            "Kit Casal",
		Description:     "12 trufas + 8 brigadeiros + 2 mini tortas",
		FullDescription: "Momentos românticos pedem doces especiais. Ideal para celebrações a dois.",
		Price:           decimal.NewFromFloat(99.00),
		PriceNote:       "kit",
		Image:           "/static/images/trufas.jpg",
		Category:        "kits",
	},
	{
		ID:              "kit-festas",
		Name:            "Kit Festas",
		Description:     "100 doces variados + embalagens personalizadas",
		FullDescription: "Para eventos corporativos e comemorações maiores. Personalização inclusa.",
		Price:           decimal.NewFromFloat(350.00),
		PriceNote:       "a partir de",
		Image:           "/static/images/brigadeiros.jpg",
		Category:        "kits",
		Tag:             models.TagPremium,
	},
}

// Products returns the full catalog in menu order. Callers must treat the
// returned slice as read-only; FilterAndSort already copies before sorting.
func Products() []models.Product {
	return products
}

// Find returns the product with the given id.
func Find(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
