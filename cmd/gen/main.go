package main

import (
	"carmarket/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BuyerProfileModel{},
		model.DealershipProfileModel{},
		model.CarModel{},
		model.CarOfferModel{},
		model.PurchaseModel{},
		model.FavoriteCarModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
