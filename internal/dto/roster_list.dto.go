package dto

import "github.com/pontolago/ponto-api/internal/models"

type RosterItemDTO struct {
	models.Employee
	EntryCount int `json:"entry_count"`
}
