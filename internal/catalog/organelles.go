// Package catalog holds the built-in question catalogs shipped with the service.
package catalog

import "organelle-quiz/internal/domain"

// OrganellesID is the identifier of the built-in cell organelle catalog.
const OrganellesID = "organelas"

// Organelles returns the cell organelle catalog. A fresh copy is returned on every call.
func Organelles() domain.Catalog {
	return domain.Catalog{
		ID: OrganellesID,
		Questions: []domain.Question{
			{
				ID:      "nucleo",
				Prompt:  "Qual organela é o 'cérebro' da célula, armazenando o DNA e controlando as atividades celulares?",
				Options: []string{"Mitocôndria", "Lisossomo", "Núcleo", "Ribossomo"},
				Answer:  "Núcleo",
				Image:   "IMGS/IMG1.png",
			},
			{
				ID:      "mitocondria",
				Prompt:  "Conhecida como a 'usina de energia', qual organela realiza a respiração celular para produzir ATP?",
				Options: []string{"Cloroplasto", "Mitocôndria", "Complexo de Golgi", "Vacúolo"},
				Answer:  "Mitocôndria",
				Image:   "IMGS/IMG2.png",
			},
			{
				ID:      "ribossomo",
				Prompt:  "Qual organela, que pode ser encontrada livre ou ligada ao R.E., é responsável pela síntese de proteínas?",
				Options: []string{"Ribossomo", "Lisossomo", "Peroxissomo", "Centríolo"},
				Answer:  "Ribossomo",
				Image:   "IMGS/IMG3.png",
			},
			{
				ID:      "reticulo-rugoso",
				Prompt:  "O Retículo Endoplasmático Rugoso tem esse nome por ter qual outra organela aderida à sua superfície?",
				Options: []string{"Lisossomos", "Vacúolos", "Ribossomos", "Peroxissomos"},
				Answer:  "Ribossomos",
				Image:   "IMGS/IMG4.png",
			},
			{
				ID:      "golgi",
				Prompt:  "Qual organela atua como o 'centro de distribuição' da célula, modificando, empacotando e enviando substâncias?",
				Options: []string{"Complexo de Golgi", "Núcleo", "Vacúolo", "Membrana Plasmática"},
				Answer:  "Complexo de Golgi",
				Image:   "IMGS/IMG5.png",
			},
			{
				ID:      "lisossomo",
				Prompt:  "Responsável pela 'digestão' da célula, esta organela quebra substâncias e organelas velhas usando enzimas.",
				Options: []string{"Mitocôndria", "Lisossomo", "Cloroplasto", "Ribossomo"},
				Answer:  "Lisossomo",
				Image:   "IMGS/IMG6.png",
			},
			{
				ID:      "cloroplasto",
				Prompt:  "Encontrada em plantas e algas, qual organela realiza a fotossíntese, convertendo luz solar em energia?",
				Options: []string{"Mitocôndria", "Parede Celular", "Centríolo", "Cloroplasto"},
				Answer:  "Cloroplasto",
				Image:   "IMGS/IMG7.png",
			},
			{
				ID:      "vacuolo",
				Prompt:  "Em células vegetais, qual organela ocupa a maior parte do volume, armazena água e mantém a pressão interna?",
				Options: []string{"Vacúolo Central", "Núcleo", "Complexo de Golgi", "Lisossomo"},
				Answer:  "Vacúolo Central",
				Image:   "IMGS/IMG8.png",
			},
		},
	}
}

// Builtin returns every built-in catalog keyed by ID.
func Builtin() map[string]domain.Catalog {
	return map[string]domain.Catalog{
		OrganellesID: Organelles(),
	}
}
