package pricing

import (
	"fmt"

	"roknsound-backend/internal/domain"
)

// dispositionByCondition is the explicit policy table mapping the reported
// return condition to the equipment status after return. Kept as a table
// rather than inline conditionals so it can be tested exhaustively.
var dispositionByCondition = map[domain.ReturnCondition]domain.EquipmentStatus{
	domain.ReturnConditionExcellent: domain.EquipmentStatusAvailable,
	domain.ReturnConditionGood:      domain.EquipmentStatusAvailable,
	domain.ReturnConditionFair:      domain.EquipmentStatusAvailable,
	domain.ReturnConditionPoor:      domain.EquipmentStatusMaintenance,
	domain.ReturnConditionDamaged:   domain.EquipmentStatusMaintenance,
}

// DispositionForCondition maps a reported return condition to the status
// the equipment takes after return.
func DispositionForCondition(c domain.ReturnCondition) (domain.EquipmentStatus, error) {
	status, ok := dispositionByCondition[c]
	if !ok {
		return "", fmt.Errorf("unknown return condition %q", c)
	}
	return status, nil
}
