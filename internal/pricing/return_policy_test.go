package pricing

import (
	"testing"

	"roknsound-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDispositionForCondition(t *testing.T) {
	tests := []struct {
		condition domain.ReturnCondition
		expected  domain.EquipmentStatus
	}{
		{domain.ReturnConditionExcellent, domain.EquipmentStatusAvailable},
		{domain.ReturnConditionGood, domain.EquipmentStatusAvailable},
		{domain.ReturnConditionFair, domain.EquipmentStatusAvailable},
		{domain.ReturnConditionPoor, domain.EquipmentStatusMaintenance},
		{domain.ReturnConditionDamaged, domain.EquipmentStatusMaintenance},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			status, err := DispositionForCondition(tt.condition)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}

	t.Run("Unknown condition", func(t *testing.T) {
		_, err := DispositionForCondition(domain.ReturnCondition("PRISTINE"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown return condition")
	})
}
