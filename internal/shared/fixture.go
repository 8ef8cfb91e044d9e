package shared

import "dealerhub/internal/domain"

// CatalogFixture is the seed data inserted the first time the car catalog is
// read from an empty store.
func CatalogFixture() []domain.CatalogSeed {
	return []domain.CatalogSeed{
		{
			Make: domain.CarMake{Name: "NISSAN", Description: "Great cars. Japanese technology"},
			Models: []domain.CarModel{
				{Name: "Pathfinder", Type: "SUV", Year: 2023},
				{Name: "Qashqai", Type: "SUV", Year: 2023},
				{Name: "XTRAIL", Type: "SUV", Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Mercedes", Description: "Great cars. German technology"},
			Models: []domain.CarModel{
				{Name: "A-Class", Type: "SUV", Year: 2023},
				{Name: "C-Class", Type: "SUV", Year: 2023},
				{Name: "E-Class", Type: "SUV", Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Audi", Description: "Great cars. German technology"},
			Models: []domain.CarModel{
				{Name: "A4", Type: "SUV", Year: 2023},
				{Name: "A5", Type: "SUV", Year: 2023},
				{Name: "A6", Type: "SUV", Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Kia", Description: "Great cars. Korean technology"},
			Models: []domain.CarModel{
				{Name: "Sorrento", Type: "SUV", Year: 2023},
				{Name: "Carnival", Type: "SUV", Year: 2023},
				{Name: "Cerato", Type: "SEDAN", Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Toyota", Description: "Great cars. Japanese technology"},
			Models: []domain.CarModel{
				{Name: "Corolla", Type: "SEDAN", Year: 2023},
				{Name: "Camry", Type: "SEDAN", Year: 2023},
				{Name: "Kluger", Type: "SUV", Year: 2023},
			},
		},
	}
}
