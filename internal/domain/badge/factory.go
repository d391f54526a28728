package badge

import (
	"github.com/fatih/structs"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/enum"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/mitchellh/mapstructure"
)

// NewDefinition builds a single definition from a tagged config map. The
// "type" key selects the concrete condition, the remaining keys are decoded
// into its parameters.
func NewDefinition(data map[string]any) (Definition, error) {
	typeName, ok := data["type"].(string)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Badge definition without a type")
	}

	defType, err := enum.ToEnum[definitionType](typeName)
	if err != nil {
		return nil, errorx.New(errorx.UnknownBadge, "Unknown badge type %s", typeName)
	}

	var def Definition
	switch defType {
	case firstTasksType:
		def, err = decodeDefinition(data, &firstTasksBadge{})
	case allClearType:
		def, err = decodeDefinition(data, &allClearBadge{})
	case streakType:
		def, err = decodeDefinition(data, &streakBadge{})
	case totalCompletedType:
		def, err = decodeDefinition(data, &totalCompletedBadge{})
	case perfectDaysType:
		def, err = decodeDefinition(data, &perfectDaysBadge{})
	case activeDaysType:
		def, err = decodeDefinition(data, &activeDaysBadge{})
	case weeklyRateType:
		def, err = decodeDefinition(data, &weeklyRateBadge{})
	case siblingHarmonyType:
		def, err = decodeDefinition(data, &siblingHarmonyBadge{})
	case comebackType:
		def, err = decodeDefinition(data, &comebackBadge{})
	case weekendClearType:
		def, err = decodeDefinition(data, &weekendClearBadge{})
	default:
		return nil, errorx.New(errorx.NotImplemented, "Unhandled badge type %s", typeName)
	}

	if err != nil {
		return nil, err
	}

	if def.ID() == "" {
		return nil, errorx.New(errorx.BadRequest, "Badge definition of type %s without an id", typeName)
	}

	if _, err := enum.ToEnum[entity.BadgeGrade](string(def.Grade())); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid grade %s of badge %s", def.Grade(), def.ID())
	}

	if _, err := enum.ToEnum[entity.BadgeCategory](string(def.Category())); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid category %s of badge %s", def.Category(), def.ID())
	}

	return def, nil
}

func decodeDefinition[T Definition](data map[string]any, def T) (Definition, error) {
	if err := mapstructure.Decode(data, def); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Cannot decode badge definition: %v", err)
	}

	return def, nil
}

// NewCatalog builds an ordered catalog from config maps, rejecting duplicate
// ids. Order is preserved: evaluation follows catalog order.
func NewCatalog(data []map[string]any) ([]Definition, error) {
	seen := map[string]struct{}{}
	catalog := make([]Definition, 0, len(data))
	for _, d := range data {
		def, err := NewDefinition(d)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[def.ID()]; ok {
			return nil, errorx.New(errorx.AlreadyExists, "Duplicated badge id %s", def.ID())
		}

		seen[def.ID()] = struct{}{}
		catalog = append(catalog, def)
	}

	return catalog, nil
}

// Describe exports a definition back into the map form used by the catalog
// API. The concrete parameters (streak days, milestone counts) are included
// next to the common fields.
func Describe(def Definition) map[string]any {
	m := structs.Map(def)
	m["grade"] = string(def.Grade())
	m["category"] = string(def.Category())
	return m
}
