package project

import (
	"fmt"

	"github.com/research-collab/collab-cli/internal/models"
)

func validateStatus(status string) error {
	for _, s := range models.ProjectStatuses {
		if status == s {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q (want open or closed)", status)
}

func validateVisibility(visibility string) error {
	for _, v := range models.Visibilities {
		if visibility == v {
			return nil
		}
	}
	return fmt.Errorf("invalid visibility %q (want private or public)", visibility)
}
