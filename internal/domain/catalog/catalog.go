// Package catalog holds the workshop's fixed reference data: the car parts a
// vehicle can have flagged as damaged, the labor services and consumable
// materials that can be quoted, pricing constants and the default work-order
// terms. The lists are intentionally hardcoded — the workshop treats them as
// configuration shipped with the product, not user data.
package catalog

import (
	"strings"

	"reparo_pro/internal/domain/entities"
)

// Pricing constants. All monetary values in BRL.
const (
	LaborCostPerHour        = 75.0
	CreditCardFeePercentage = 4.99
	DefaultLaborHours       = 2.0
)

// CarPart is a selectable physical panel/section of the vehicle.
type CarPart struct {
	ID   string
	Name string
}

// ServiceTemplate is a catalog labor service before it becomes a quote line
// (the line adds hours and rate).
type ServiceTemplate struct {
	Name string
	Type entities.ServiceType
}

// CarParts lists every part selectable on the damage diagram, in display order.
var CarParts = []CarPart{
	{ID: "front-bumper", Name: "Para-choque Dianteiro"},
	{ID: "hood", Name: "Capô"},
	{ID: "front-left-fender", Name: "Para-lama Dianteiro Esquerdo"},
	{ID: "front-right-fender", Name: "Para-lama Dianteiro Direito"},
	{ID: "front-left-door", Name: "Porta Dianteira Esquerda"},
	{ID: "front-right-door", Name: "Porta Dianteira Direita"},
	{ID: "rear-left-door", Name: "Porta Traseira Esquerda"},
	{ID: "rear-right-door", Name: "Porta Traseira Direita"},
	{ID: "roof", Name: "Teto"},
	{ID: "trunk", Name: "Porta-malas"},
	{ID: "rear-bumper", Name: "Para-choque Traseiro"},
	{ID: "rear-left-fender", Name: "Para-lama Traseiro Esquerdo"},
	{ID: "rear-right-fender", Name: "Para-lama Traseiro Direito"},
	{ID: "left-rocker-panel", Name: "Saia Lateral Esquerda"},
	{ID: "right-rocker-panel", Name: "Saia Lateral Direita"},
}

// AvailableServices lists the labor services offered, grouped by repair stage.
var AvailableServices = []ServiceTemplate{
	{Name: "Desamassar (Pequeno)", Type: entities.ServiceTypeBodywork},
	{Name: "Desamassar (Grande)", Type: entities.ServiceTypeBodywork},
	{Name: "Solda Plástica", Type: entities.ServiceTypeBodywork},
	{Name: "Alinhamento de Painel", Type: entities.ServiceTypeBodywork},
	{Name: "Aplicação de Massa", Type: entities.ServiceTypePrep},
	{Name: "Lixamento", Type: entities.ServiceTypePrep},
	{Name: "Aplicação de Primer", Type: entities.ServiceTypePrep},
	{Name: "Pintura (Base)", Type: entities.ServiceTypePaint},
	{Name: "Aplicação de Verniz", Type: entities.ServiceTypePaint},
	{Name: "Polimento", Type: entities.ServiceTypeFinishing},
	{Name: "Espelhamento", Type: entities.ServiceTypeFinishing},
}

// AvailableMaterials lists the consumables that can be added to a quote. The
// unit is part of the display name.
var AvailableMaterials = []string{
	"Tinta (ml)",
	"Verniz (ml)",
	"Primer (ml)",
	"Massa Poliéster (g)",
	"Lixa (unidade)",
	"Fita Crepe (rolo)",
	"Desengraxante (ml)",
}

// ServiceProgressStatuses are the free-text progress labels the workshop uses
// on timeline events, in shop-floor order.
var ServiceProgressStatuses = []string{
	"Em Análise",
	"Aguardando Peças",
	"Em Funilaria",
	"Em Preparação",
	"Em Pintura",
	"Em Montagem",
	"Polimento",
	"Controle de Qualidade",
	"Pronto para Retirada",
	"Concluído",
}

// DefaultTerms is the work-order fine print applied when the staff does not
// override it.
const DefaultTerms = `1. Esta Ordem de Serviço é válida a partir da data de sua emissão e autoriza a ReparoPro Oficina a executar os serviços descritos.
2. O cliente declara estar ciente de que o prazo de entrega é uma estimativa e pode sofrer alterações.
3. A garantia dos serviços de mão de obra é de 90 dias. Peças e materiais seguem a garantia do fabricante.
4. A oficina não se responsabiliza por objetos deixados no interior do veículo.
5. O pagamento deve ser realizado conforme as condições acordadas e descritas no orçamento.`

// WorkOrderOpenedEvent seeds the timeline when a work order is generated.
const (
	WorkOrderOpenedStatus      = "OS Gerada"
	WorkOrderOpenedDescription = "Ordem de serviço gerada e aguardando início dos reparos."
)

// PartByID returns the catalog part for id, or false when the id is unknown.
func PartByID(id string) (CarPart, bool) {
	for _, p := range CarParts {
		if p.ID == id {
			return p, true
		}
	}
	return CarPart{}, false
}

// ServiceByName returns the catalog service template with that exact name.
func ServiceByName(name string) (ServiceTemplate, bool) {
	for _, s := range AvailableServices {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceTemplate{}, false
}

// MatchServiceName fuzzy-matches a free-text suggested service name against
// the catalog: the suggestion matches a catalog entry when it contains,
// case-insensitively, the first word of the catalog name. First match in
// catalog order wins.
func MatchServiceName(suggested string) (ServiceTemplate, bool) {
	lowered := strings.ToLower(suggested)
	for _, s := range AvailableServices {
		firstWord := strings.ToLower(strings.Fields(s.Name)[0])
		if strings.Contains(lowered, firstWord) {
			return s, true
		}
	}
	return ServiceTemplate{}, false
}

// ValidPaymentMethod reports whether m is one of the accepted methods.
// The empty method is not acceptable once a quote is finalized.
func ValidPaymentMethod(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodPix, entities.PaymentMethodDebit, entities.PaymentMethodCredit:
		return true
	}
	return false
}
