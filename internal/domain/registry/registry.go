// Package registry implements the damaged-part editing operations of a
// quote. Every operation takes the current damaged-part map and returns a new
// one; the input is never mutated, so callers can keep the previous state for
// comparison or rollback.
package registry

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"reparo_pro/internal/domain/catalog"
	"reparo_pro/internal/domain/entities"
)

var (
	ErrUnknownPart      = errors.New("part id not in catalog")
	ErrUnknownService   = errors.New("service not in catalog")
	ErrInvalidLineItem  = errors.New("line item requires a name and a non-negative cost")
	ErrLineItemNotFound = errors.New("line item not found on part")
	ErrServiceNotFound  = errors.New("service not found on part")
	ErrPartNotDamaged   = errors.New("part is not flagged as damaged")
)

// LineItemKind selects which list of a damaged part a line-item operation
// targets.

type LineItemKind string

const (
	LineItemPart     LineItemKind = "part"
	LineItemMaterial LineItemKind = "material"
)

func clone(parts map[string]entities.DamagedPart) map[string]entities.DamagedPart {
	out := make(map[string]entities.DamagedPart, len(parts))
	for k, v := range parts {
		v.Services = append([]entities.Service(nil), v.Services...)
		v.ReplacementParts = append([]entities.LineItem(nil), v.ReplacementParts...)
		v.Materials = append([]entities.LineItem(nil), v.Materials...)
		out[k] = v
	}
	return out
}

// TogglePart flags partID as damaged, or removes the flag (discarding all its
// lines) when it is already present.
func TogglePart(parts map[string]entities.DamagedPart, partID string) (map[string]entities.DamagedPart, error) {
	cat, ok := catalog.PartByID(partID)
	if !ok {
		return nil, ErrUnknownPart
	}
	out := clone(parts)
	if _, damaged := out[partID]; damaged {
		delete(out, partID)
		return out, nil
	}
	out[partID] = entities.DamagedPart{
		PartID:           partID,
		PartName:         cat.Name,
		Services:         []entities.Service{},
		ReplacementParts: []entities.LineItem{},
		Materials:        []entities.LineItem{},
	}
	return out, nil
}

// SetServiceSelected adds the named catalog service to the part (with default
// hours and the standard rate) when selected is true, or removes it by name
// when false. Deselecting a service that is not present is not an error.
func SetServiceSelected(parts map[string]entities.DamagedPart, partID, serviceName string, selected bool) (map[string]entities.DamagedPart, error) {
	tpl, ok := catalog.ServiceByName(serviceName)
	if !ok {
		return nil, ErrUnknownService
	}
	out := clone(parts)
	dp, ok := out[partID]
	if !ok {
		return nil, ErrPartNotDamaged
	}

	idx := -1
	for i, svc := range dp.Services {
		if svc.Name == tpl.Name {
			idx = i
			break
		}
	}
	if selected {
		if idx >= 0 {
			return out, nil
		}
		dp.Services = append(dp.Services, entities.Service{
			ID:          uuid.NewString(),
			Name:        tpl.Name,
			Type:        tpl.Type,
			LaborHours:  catalog.DefaultLaborHours,
			CostPerHour: catalog.LaborCostPerHour,
		})
	} else if idx >= 0 {
		dp.Services = append(dp.Services[:idx], dp.Services[idx+1:]...)
	}
	out[partID] = dp
	return out, nil
}

// UpdateServiceHours sets the labor hours of one service line. Values are
// accepted as-is, including zero and negative — correcting operator typos is
// the UI's concern, not the registry's.
func UpdateServiceHours(parts map[string]entities.DamagedPart, partID, serviceID string, hours float64) (map[string]entities.DamagedPart, error) {
	out := clone(parts)
	dp, ok := out[partID]
	if !ok {
		return nil, ErrPartNotDamaged
	}
	for i, svc := range dp.Services {
		if svc.ID == serviceID {
			dp.Services[i].LaborHours = hours
			out[partID] = dp
			return out, nil
		}
	}
	return nil, ErrServiceNotFound
}

// AddLineItem appends a replacement part or material to the damaged part,
// minting the line id. Name must be non-blank, quantity positive and unit
// cost non-negative.
func AddLineItem(parts map[string]entities.DamagedPart, partID string, kind LineItemKind, item entities.LineItem) (map[string]entities.DamagedPart, error) {
	if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitCost < 0 {
		return nil, ErrInvalidLineItem
	}
	out := clone(parts)
	dp, ok := out[partID]
	if !ok {
		return nil, ErrPartNotDamaged
	}
	item.ID = uuid.NewString()
	switch kind {
	case LineItemMaterial:
		dp.Materials = append(dp.Materials, item)
	default:
		dp.ReplacementParts = append(dp.ReplacementParts, item)
	}
	out[partID] = dp
	return out, nil
}

// UpdateLineItem replaces the fields of an existing line, keeping its id.
func UpdateLineItem(parts map[string]entities.DamagedPart, partID string, kind LineItemKind, item entities.LineItem) (map[string]entities.DamagedPart, error) {
	if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitCost < 0 {
		return nil, ErrInvalidLineItem
	}
	out := clone(parts)
	dp, ok := out[partID]
	if !ok {
		return nil, ErrPartNotDamaged
	}
	list := dp.ReplacementParts
	if kind == LineItemMaterial {
		list = dp.Materials
	}
	for i := range list {
		if list[i].ID == item.ID {
			list[i].Name = item.Name
			list[i].Quantity = item.Quantity
			list[i].UnitCost = item.UnitCost
			out[partID] = dp
			return out, nil
		}
	}
	return nil, ErrLineItemNotFound
}

// RemoveLineItem deletes one line by id.
func RemoveLineItem(parts map[string]entities.DamagedPart, partID string, kind LineItemKind, itemID string) (map[string]entities.DamagedPart, error) {
	out := clone(parts)
	dp, ok := out[partID]
	if !ok {
		return nil, ErrPartNotDamaged
	}
	if kind == LineItemMaterial {
		for i, it := range dp.Materials {
			if it.ID == itemID {
				dp.Materials = append(dp.Materials[:i], dp.Materials[i+1:]...)
				out[partID] = dp
				return out, nil
			}
		}
	} else {
		for i, it := range dp.ReplacementParts {
			if it.ID == itemID {
				dp.ReplacementParts = append(dp.ReplacementParts[:i], dp.ReplacementParts[i+1:]...)
				out[partID] = dp
				return out, nil
			}
		}
	}
	return nil, ErrLineItemNotFound
}

// ApplySuggestion bulk-inserts an AI repair suggestion:
//   - suggested part ids not in the catalog are skipped;
//   - parts already flagged as damaged are left untouched;
//   - each part gets only the service names suggested under its own id;
//     names are fuzzy-matched against the catalog (see
//     catalog.MatchServiceName) and added with default hours and the
//     standard rate; names with no match are dropped silently;
//   - the same matched service is added at most once per part.
func ApplySuggestion(parts map[string]entities.DamagedPart, s entities.RepairSuggestion) map[string]entities.DamagedPart {
	out := clone(parts)
	for _, partID := range s.DamagedParts {
		cat, ok := catalog.PartByID(partID)
		if !ok {
			continue
		}
		if _, damaged := out[partID]; damaged {
			continue
		}

		services := []entities.Service{}
		seen := map[string]bool{}
		for _, name := range s.SuggestedServices[partID] {
			tpl, ok := catalog.MatchServiceName(name)
			if !ok || seen[tpl.Name] {
				continue
			}
			seen[tpl.Name] = true
			services = append(services, entities.Service{
				ID:          uuid.NewString(),
				Name:        tpl.Name,
				Type:        tpl.Type,
				LaborHours:  catalog.DefaultLaborHours,
				CostPerHour: catalog.LaborCostPerHour,
			})
		}
		out[partID] = entities.DamagedPart{
			PartID:           partID,
			PartName:         cat.Name,
			Services:         services,
			ReplacementParts: []entities.LineItem{},
			Materials:        []entities.LineItem{},
		}
	}
	return out
}
