package estimation

import (
	"Zero-Desperdicio/domain"
	"Zero-Desperdicio/internal/utils/keywords"
)

// DefaultShelfLifeDays applies when neither a keyword nor the category
// table knows the product.
const DefaultShelfLifeDays = 7

// DefaultPrice is the fallback estimate in BRL.
const DefaultPrice = 10

var naturalCategories = map[domain.FoodCategory]bool{
	domain.CategoryFruit:     true,
	domain.CategoryVegetable: true,
	domain.CategoryGreens:    true,
	domain.CategoryDairy:     true,
	domain.CategoryMeat:      true,
}

var shelfLifeByKeyword = keywords.Table[int]{
	// frutas
	{Keyword: "banana", Value: 7},
	{Keyword: "maçã", Value: 14},
	{Keyword: "laranja", Value: 10},
	{Keyword: "limão", Value: 14},
	{Keyword: "morango", Value: 5},
	{Keyword: "uva", Value: 7},
	{Keyword: "mamão", Value: 5},
	{Keyword: "manga", Value: 7},
	{Keyword: "abacate", Value: 5},
	{Keyword: "melancia", Value: 7},
	{Keyword: "melão", Value: 7},
	{Keyword: "pêra", Value: 7},
	{Keyword: "pêssego", Value: 5},
	{Keyword: "abacaxi", Value: 5},
	{Keyword: "kiwi", Value: 7},

	// verduras
	{Keyword: "alface", Value: 5},
	{Keyword: "rúcula", Value: 4},
	{Keyword: "espinafre", Value: 5},
	{Keyword: "couve-flor", Value: 7},
	{Keyword: "couve", Value: 7},
	{Keyword: "agrião", Value: 4},
	{Keyword: "salsinha", Value: 7},
	{Keyword: "cebolinha", Value: 7},
	{Keyword: "coentro", Value: 5},

	// legumes
	{Keyword: "tomate", Value: 7},
	{Keyword: "cenoura", Value: 14},
	{Keyword: "batata", Value: 21},
	{Keyword: "cebola", Value: 30},
	{Keyword: "alho", Value: 30},
	{Keyword: "pepino", Value: 7},
	{Keyword: "abobrinha", Value: 7},
	{Keyword: "berinjela", Value: 7},
	{Keyword: "pimentão", Value: 7},
	{Keyword: "brócolis", Value: 5},
	{Keyword: "beterraba", Value: 14},

	// laticínios
	{Keyword: "queijo fresco", Value: 7},
	{Keyword: "ricota", Value: 7},
	{Keyword: "iogurte natural", Value: 10},

	// carnes
	{Keyword: "frango", Value: 3},
	{Keyword: "carne bovina", Value: 3},
	{Keyword: "carne suína", Value: 3},
	{Keyword: "peixe", Value: 2},
	{Keyword: "camarão", Value: 2},
}

var shelfLifeByCategory = map[domain.FoodCategory]int{
	domain.CategoryFruit:          7,
	domain.CategoryVegetable:      10,
	domain.CategoryGreens:         5,
	domain.CategoryDairy:          7,
	domain.CategoryMeat:           3,
	domain.CategoryGrain:          180,
	domain.CategoryBeverage:       30,
	domain.CategoryFrozen:         90,
	domain.CategorySeasoning:      180,
	domain.CategoryIndustrialized: 90,
	domain.CategoryOther:          7,
}

var priceByKeyword = keywords.Table[int64]{
	{Keyword: "banana", Value: 5},
	{Keyword: "maçã", Value: 8},
	{Keyword: "tomate", Value: 7},
	{Keyword: "alface", Value: 4},
	{Keyword: "leite", Value: 6},
	{Keyword: "queijo", Value: 25},
	{Keyword: "frango", Value: 15},
	{Keyword: "carne", Value: 35},
	{Keyword: "peixe", Value: 30},
	{Keyword: "iogurte", Value: 8},
	{Keyword: "pão", Value: 10},
	{Keyword: "ovo", Value: 15},
}
