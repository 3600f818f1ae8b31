package room

// DefaultCategories is the classic adedonha set every new room starts with.
// Rooms can swap these wholesale via UpdateCategories.
func DefaultCategories() []Category {
	return []Category{
		{ID: "nome", Label: "Nome", Icon: "🙍"},
		{ID: "animal", Label: "Animal", Icon: "🐸"},
		{ID: "cor", Label: "Cor", Icon: "🎨"},
		{ID: "fruta", Label: "Fruta", Icon: "🍉"},
		{ID: "objeto", Label: "Objeto", Icon: "📦"},
		{ID: "profissao", Label: "Profissão", Icon: "👷"},
		{ID: "pais", Label: "País", Icon: "🌎"},
		{ID: "comida", Label: "Comida", Icon: "🍽️"},
	}
}
