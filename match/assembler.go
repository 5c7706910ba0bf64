package match

import (
	"github.com/hupe1980/mimatch/model"
)

// assemble writes the donor's group-column working values into the
// recipient's slot of the imputed-value matrices for completed imputation
// imp. Pure scatter write; nothing else in the container is touched.
func assemble(c *model.Container, plan *GroupPlan, recipient, donor, imp int) {
	slot := plan.ImpIndex[recipient]
	for k, col := range plan.Cols {
		c.Imp[col][slot][imp] = plan.Working[k][donor]
	}
}
