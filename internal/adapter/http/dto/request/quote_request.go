package request

import (
	"reparo_pro/internal/domain/entities"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type VehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
	Plate string `json:"plate"`
}

type PhotoRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ServicePayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	LaborHours  float64 `json:"labor_hours"`
	CostPerHour float64 `json:"cost_per_hour"`
}

type LineItemPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

type DamagedPartPayload struct {
	PartID           string            `json:"part_id"`
	PartName         string            `json:"part_name"`
	Services         []ServicePayload  `json:"services"`
	ReplacementParts []LineItemPayload `json:"replacement_parts"`
	Materials        []LineItemPayload `json:"materials"`
}

// QuoteRequest is the estimate save payload. Lifecycle fields (status,
// timestamps, portal token, ledgers) are never accepted from the client.
type QuoteRequest struct {
	ID            string                        `json:"id"`
	Customer      CustomerRequest               `json:"customer"`
	Vehicle       VehicleRequest                `json:"vehicle"`
	Photos        []PhotoRequest                `json:"photos"`
	DamagedParts  map[string]DamagedPartPayload `json:"damaged_parts"`
	PaymentMethod string                        `json:"payment_method"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	q := entities.Quote{
		ID:            r.ID,
		Customer:      entities.Customer(r.Customer),
		Vehicle:       entities.Vehicle(r.Vehicle),
		Photos:        []entities.Photo{},
		DamagedParts:  map[string]entities.DamagedPart{},
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
	for _, p := range r.Photos {
		q.Photos = append(q.Photos, entities.Photo(p))
	}
	for key, dp := range r.DamagedParts {
		part := entities.DamagedPart{
			PartID:           dp.PartID,
			PartName:         dp.PartName,
			Services:         []entities.Service{},
			ReplacementParts: []entities.LineItem{},
			Materials:        []entities.LineItem{},
		}
		for _, s := range dp.Services {
			part.Services = append(part.Services, entities.Service{
				ID:          s.ID,
				Name:        s.Name,
				Type:        entities.ServiceType(s.Type),
				LaborHours:  s.LaborHours,
				CostPerHour: s.CostPerHour,
			})
		}
		for _, li := range dp.ReplacementParts {
			part.ReplacementParts = append(part.ReplacementParts, entities.LineItem(li))
		}
		for _, li := range dp.Materials {
			part.Materials = append(part.Materials, entities.LineItem(li))
		}
		q.DamagedParts[key] = part
	}
	return q
}
