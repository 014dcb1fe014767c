package migrations

import (
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
)

func MigrateAuth() {
	utils.DB.AutoMigrate(&models.User{}, &models.SalesAgent{})
}

func MigrateFreight() {
	utils.DB.AutoMigrate(&models.Order{}, &models.Carton{}, &models.Console{})
}

func MigrateCRM() {
	utils.DB.AutoMigrate(&models.Customer{}, &models.Lead{}, &models.LeadComment{})
}

func MigrateDocuments() {
	utils.DB.AutoMigrate(
		&models.ImportInvoice{}, &models.InvoiceItem{},
		&models.PackingList{}, &models.PackingListItem{},
	)
}

func MigrateSequences() {
	utils.DB.AutoMigrate(&models.Sequence{})
}
