package notification

import "Zero-Desperdicio/internal/utils/keywords"

type persona struct {
	Emoji      string
	Complaint  string
	Resolution string
}

var defaultChefSuggestion = "uma receita especial"

var chefSuggestions = keywords.Table[string]{
	{Keyword: "tomate", Value: "um molho caseiro"},
	{Keyword: "banana", Value: "um bolo de banana"},
	{Keyword: "leite", Value: "um pudim cremoso"},
	{Keyword: "frango", Value: "um frango grelhado"},
	{Keyword: "queijo", Value: "um sanduíche gourmet"},
	{Keyword: "ovo", Value: "uma omelete especial"},
	{Keyword: "batata", Value: "um purê delicioso"},
	{Keyword: "carne", Value: "um strogonoff"},
	{Keyword: "limão", Value: "uma limonada ou torta"},
	{Keyword: "maçã", Value: "uma torta de maçã"},
}

var defaultPersona = persona{Emoji: "🍽️", Complaint: "Não me deixe estragar...", Resolution: "Me use"}

var personas = keywords.Table[persona]{
	{Keyword: "tomate", Value: persona{"🍅", "Estou ficando enrugado...", "Viro um molho incrível"}},
	{Keyword: "banana", Value: persona{"🍌", "Estou ficando pretinha...", "Viro um bolo delicioso"}},
	{Keyword: "alface", Value: persona{"🥬", "Estou murchando...", "Viro uma salada refrescante"}},
	{Keyword: "maçã", Value: persona{"🍎", "Estou perdendo meu brilho...", "Viro uma torta caseira"}},
	{Keyword: "limão", Value: persona{"🍋", "Estou ressecando...", "Viro uma limonada gelada"}},
	{Keyword: "queijo", Value: persona{"🧀", "Estou ficando duro...", "Viro um sanduíche quente"}},
	{Keyword: "leite", Value: persona{"🥛", "Estou azedando...", "Viro um mingau ou vitamina"}},
	{Keyword: "ovo", Value: persona{"🥚", "Estou perdendo frescor...", "Viro uma omelete recheada"}},
}
